package fonts

import "testing"

func TestFontFacesComplete(t *testing.T) {
	for _, family := range FontFamilies {
		for _, style := range FontStyles {
			f := family.Font(FONT_SIZE_M, style).Sizeless()
			if len(FontFaces[f]) == 0 {
				t.Errorf("missing face for %s %s", family, style)
			}
		}
	}
}
