package types

import (
	"fmt"

	"tunnel-server/internal/core/types/enums"
)

// Glyph — символ и цвет сущности, упакованные в одно слово:
//
//	[0:8]  — ASCII-символ
//	[8:32] — цвет RGB (0xRRGGBB)
//
// Снапшоты и терминальный клиент рисуют сущности по глифу их вида.
type Glyph uint32

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1
	maskColor = (1 << bitsColor) - 1
)

// MakeGlyph упаковывает цвет и символ. Лишние старшие биты отрезаются.
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Color — цвет в формате 0xRRGGBB.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// String — для логов: Glyph{char='@', color=#00FF00}.
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}
	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.HexColor())
}

// HexColor возвращает строковое HEX-представление цвета (например, "#00FF00").
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}

// kindGlyphs — как каждый вид сущности выглядит в терминале и в снапшотах.
var kindGlyphs = map[enums.EntityKind]Glyph{
	enums.EntityTerrain:           MakeGlyph(0x8B5A2B, '#'),
	enums.EntityPlayer:            MakeGlyph(0x00FF00, '@'),
	enums.EntityBoulder:           MakeGlyph(0xA0A0A0, 'O'),
	enums.EntityBarrel:            MakeGlyph(0x202020, 'B'),
	enums.EntityGold:              MakeGlyph(0xFFD700, '$'),
	enums.EntityWater:             MakeGlyph(0x1E90FF, 'w'),
	enums.EntitySonar:             MakeGlyph(0x00FFFF, 's'),
	enums.EntitySquirt:            MakeGlyph(0x87CEFA, '~'),
	enums.EntityRegularProtester:  MakeGlyph(0xFF4500, 'P'),
	enums.EntityHardcoreProtester: MakeGlyph(0xFF0000, 'H'),
}

// GlyphFor возвращает глиф для вида сущности ('?' для неизвестных).
func GlyphFor(kind enums.EntityKind) Glyph {
	if g, ok := kindGlyphs[kind]; ok {
		return g
	}
	return MakeGlyph(0xFFFFFF, '?')
}
