package delivery

import "net/http"

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index отдаёт единственную страницу приложения. Статика вшита в бинарь,
// отдельной раздачи файлов нет.
func (h *PageHandler) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>PDF to Audiobook Converter</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 640px; margin: 40px auto; padding: 0 16px; color: #222; }
  h1 { font-size: 1.6em; }
  fieldset { border: 1px solid #ddd; border-radius: 8px; margin: 16px 0; padding: 12px 16px; }
  legend { font-weight: 600; }
  label { display: block; margin: 8px 0 4px; }
  .hint { color: #777; font-size: 0.85em; }
  .row { display: flex; gap: 24px; flex-wrap: wrap; }
  .row > div { flex: 1; min-width: 220px; }
  button { background: #ff4b4b; color: #fff; border: 0; border-radius: 8px; padding: 10px 18px; font-size: 1em; cursor: pointer; }
  button:disabled { opacity: 0.5; cursor: default; }
  #status { margin: 16px 0; }
  .ok { color: #1a7f37; }
  .err { color: #c0392b; }
  details { margin: 12px 0; }
  pre { white-space: pre-wrap; background: #f6f6f6; padding: 12px; border-radius: 8px; max-height: 240px; overflow: auto; }
  audio { width: 100%; margin: 12px 0; }
  a.download { display: inline-block; background: #ff4b4b; color: #fff; text-decoration: none; border-radius: 8px; padding: 10px 18px; }
</style>
</head>
<body>
<h1>&#128218; PDF to Audiobook Converter</h1>
<p>Upload a PDF file to convert its content into a downloadable MP3 audiobook.</p>
<hr>
<form id="form">
  <label for="file">Upload your PDF document</label>
  <input id="file" name="file" type="file" accept=".pdf" required>
  <p class="hint">Only single PDF files are supported.</p>

  <fieldset>
    <legend>Audio Settings</legend>
    <div class="row">
      <div>
        <label for="speed">Reading Speed (Rate)</label>
        <select id="speed" name="speed">
          <option value="normal" selected>Normal (1.0x)</option>
          <option value="slow">Slow (0.5x)</option>
        </select>
        <p class="hint">Controls the speed of the voice narration.</p>
      </div>
      <div>
        <label for="pitch">Voice Pitch (Not functional)</label>
        <input id="pitch" name="pitch" type="range" min="0.5" max="1.5" step="0.1" value="1.0">
        <p class="hint">Pitch adjustment is not supported by the synthesis backends.</p>
      </div>
    </div>
  </fieldset>

  <button id="convert" type="submit">Convert to Audiobook</button>
</form>

<div id="status"><p>Please upload a PDF file above to begin the conversion process.</p></div>
<div id="result"></div>

<script>
(function () {
  var form = document.getElementById('form');
  var status = document.getElementById('status');
  var result = document.getElementById('result');
  var button = document.getElementById('convert');

  form.addEventListener('submit', function (ev) {
    ev.preventDefault();

    var fileInput = document.getElementById('file');
    if (!fileInput.files.length) {
      status.innerHTML = '<p>Please upload a PDF file above to begin the conversion process.</p>';
      return;
    }

    var data = new FormData();
    data.append('file', fileInput.files[0]);
    data.append('speed', document.getElementById('speed').value);
    data.append('pitch', document.getElementById('pitch').value);

    button.disabled = true;
    result.innerHTML = '';
    status.innerHTML = '<p>Converting text to MP3. This may take a moment for large files...</p>';

    fetch('/convert', { method: 'POST', body: data })
      .then(function (resp) {
        return resp.json().then(function (body) { return { ok: resp.ok, body: body }; });
      })
      .then(function (res) {
        if (!res.ok) {
          var msg = res.body && res.body.error ? res.body.error : 'conversion failed';
          if (res.body && res.body.stage === 'extraction') {
            msg = 'Error: Could not extract any readable text from the PDF. (' + msg + ')';
          }
          status.innerHTML = '<p class="err">' + esc(msg) + '</p>';
          return;
        }
        render(res.body);
      })
      .catch(function (err) {
        status.innerHTML = '<p class="err">' + esc(String(err)) + '</p>';
      })
      .finally(function () {
        button.disabled = false;
      });
  });

  function render(body) {
    status.innerHTML = '<p class="ok">&#9989; Text extraction complete!</p>' +
      '<p class="ok">&#127881; Audiobook created successfully!</p>';

    var preview = body.text_preview + (body.truncated ? '...' : '');
    var src = 'data:' + body.mime_type + ';base64,' + body.audio_base64;

    result.innerHTML =
      '<details><summary>View Extracted Text</summary><pre></pre></details>' +
      '<audio controls></audio><br>' +
      '<a class="download">Download MP3 Audiobook</a>' +
      '<p class="hint"></p>';

    result.querySelector('pre').textContent = preview;
    result.querySelector('audio').src = src;
    result.querySelector('p.hint').textContent = body.size_human + ' / ' + body.provider;

    var link = result.querySelector('a.download');
    link.href = src;
    link.download = body.download_name;
  }

  function esc(s) {
    var div = document.createElement('div');
    div.textContent = s;
    return div.innerHTML;
  }
})();
</script>
</body>
</html>
`
