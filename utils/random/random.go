package random

import (
	"math/rand"
)

const alphaNumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

// AlphaNumeric 指定した文字数のランダム英数字文字列を生成します
//
// 暗号学的に安全ではありません。
func AlphaNumeric(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphaNumeric[rand.Intn(len(alphaNumeric))]
	}
	return string(b)
}
