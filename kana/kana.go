// Package kana classifies Japanese script and folds katakana to hiragana.
package kana

import "strings"

// IsKanji reports whether r is a CJK ideograph or the iteration mark 々.
func IsKanji(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF) || r == '々'
}

func IsHiragana(r rune) bool {
	return r >= 0x3040 && r <= 0x309F
}

// IsKatakana includes the prolonged sound mark ー.
func IsKatakana(r rune) bool {
	return r >= 0x30A0 && r <= 0x30FF
}

// IsKana returns true if rune is Hiragana or Katakana
func IsKana(r rune) bool {
	return IsHiragana(r) || IsKatakana(r)
}

// IsJapanese reports whether r can be part of a Japanese word.
func IsJapanese(r rune) bool {
	return IsKana(r) || IsKanji(r)
}

// ContainsKanji reports whether s has at least one kanji.
func ContainsKanji(s string) bool {
	return strings.IndexFunc(s, IsKanji) >= 0
}

// KatakanaToHiragana converts katakana to hiragana. ー and the katakana-only
// letters ヷ through ヺ are left alone.
func KatakanaToHiragana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 0x30A1 && r <= 0x30F6 {
			return r - 0x60
		}
		return r
	}, s)
}
