package kana

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKatakanaToHiragana(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"タベル", "たべる"},
		{"イリミナイカワ", "いりみないかわ"},
		{"ラーメン", "らーめん"},
		{"ヴァ", "ゔぁ"},
		{"食べる", "食べる"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, KatakanaToHiragana(tt.in))
		})
	}
}

func TestScripts(t *testing.T) {
	assert.True(t, IsKanji('食'))
	assert.True(t, IsKanji('々'))
	assert.False(t, IsKanji('た'))

	assert.True(t, IsHiragana('た'))
	assert.False(t, IsHiragana('タ'))
	assert.True(t, IsKatakana('ー'))
	assert.True(t, IsKana('タ'))

	assert.True(t, IsJapanese('べ'))
	assert.False(t, IsJapanese('。'))
	assert.False(t, IsJapanese('a'))

	assert.True(t, ContainsKanji("入見内川"))
	assert.False(t, ContainsKanji("たべる"))
}
