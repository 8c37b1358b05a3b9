package generator

import (
	"crypto/sha256"
	"encoding/hex"
)

// Alphabet 负载字符集：a-z 与 A-Z
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewPayload 生成长度为 n 的随机负载
// 每个字符独立且均匀地从 Alphabet 中抽取
func NewPayload(src Source, n int) []byte {
	payload := make([]byte, n)
	for i := range payload {
		payload[i] = Alphabet[src.IntN(len(Alphabet))]
	}
	return payload
}

// Checksum 计算负载的 SHA-256 十六进制摘要（小写）
func Checksum(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// IsAlphabetic 判断负载是否只包含 Alphabet 中的字符
func IsAlphabetic(payload []byte) bool {
	for _, b := range payload {
		if !(b >= 'a' && b <= 'z') && !(b >= 'A' && b <= 'Z') {
			return false
		}
	}
	return true
}
