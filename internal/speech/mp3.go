package speech

// IsMP3 проверяет сигнатуру буфера: ID3-тег либо sync-биты первого фрейма.
// Google-эндпоинт при троттлинге отвечает 200 с HTML вместо аудио,
// поэтому одного кода ответа мало.
func IsMP3(b []byte) bool {
	if len(b) < 3 {
		return false
	}
	if b[0] == 'I' && b[1] == 'D' && b[2] == '3' {
		return true
	}
	return b[0] == 0xFF && b[1]&0xE0 == 0xE0
}
