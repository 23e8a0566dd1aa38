package usecase_project

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// 自动检测并转换为UTF-8编码
func convertToUTF8(input string) string {
	if !utf8.ValidString(input) {
		return decodeGBK([]byte(input), input)
	}

	// ID3 的 ISO-8859-1 帧会把 GBK 字节逐个映射为拉丁字符
	if raw, ok := latin1Bytes(input); ok && isGBK(raw) {
		return decodeGBK(raw, input)
	}
	return input
}

func decodeGBK(data []byte, fallback string) string {
	decoder := simplifiedchinese.GBK.NewDecoder()
	output, _, err := transform.Bytes(decoder, data)
	if err == nil && utf8.Valid(output) {
		return string(output)
	}

	// 尝试从GB18030转换为UTF-8（兼容性更好）
	decoder = simplifiedchinese.GB18030.NewDecoder()
	output, _, err = transform.Bytes(decoder, data)
	if err == nil && utf8.Valid(output) {
		return string(output)
	}
	return fallback
}

// latin1Bytes 仅当字符串含有高位拉丁字符且全部码点不超过 0xFF 时返回对应字节
func latin1Bytes(s string) ([]byte, bool) {
	out := make([]byte, 0, len(s))
	high := false
	for _, r := range s {
		if r > 0xFF {
			return nil, false
		}
		if r > 0x7F {
			high = true
		}
		out = append(out, byte(r))
	}
	return out, high
}

// 检测是否为GBK编码
func isGBK(data []byte) bool {
	length := len(data)
	var i int
	for i < length {
		if data[i] <= 0x7f {
			i++
			continue
		}

		if i+1 >= length {
			return false
		}

		if data[i] >= 0x81 && data[i] <= 0xfe &&
			data[i+1] >= 0x40 && data[i+1] <= 0xfe && data[i+1] != 0x7f {
			i += 2
			continue
		}

		return false
	}
	return true
}
