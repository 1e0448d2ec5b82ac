package tmages

import (
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var fileColors = map[string]tcell.Color{
	// Raster formats the previewer can blit
	"jpg":  tcell.ColorMediumPurple,
	"jpeg": tcell.ColorMediumPurple,
	"png":  tcell.ColorMediumPurple,
	"gif":  tcell.ColorMediumPurple,
	"bmp":  tcell.ColorMediumPurple,
	"webp": tcell.ColorMediumPurple,

	"svg":  tcell.ColorPlum,
	"tif":  tcell.ColorPlum,
	"tiff": tcell.ColorPlum,
	"mov":  tcell.ColorLightSalmon,
	"mp4":  tcell.ColorLightSalmon,

	"go":   tcell.ColorAqua,
	"c":    tcell.ColorDodgerBlue,
	"h":    tcell.ColorDodgerBlue,
	"cpp":  tcell.ColorDodgerBlue,
	"rs":   tcell.ColorOrange,
	"py":   tcell.ColorLightGreen,
	"rb":   tcell.ColorRed,
	"js":   tcell.ColorYellow,
	"ts":   tcell.ColorDeepSkyBlue,
	"html": tcell.ColorOrangeRed,
	"css":  tcell.ColorViolet,
	"sh":   tcell.ColorGreen,
	"sql":  tcell.ColorSpringGreen,

	"json": tcell.ColorGold,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"toml": tcell.ColorLightYellow,
	"xml":  tcell.ColorLightYellow,
	"csv":  tcell.ColorLightGreen,
	"md":   tcell.ColorBisque,
	"txt":  tcell.ColorWhite,
	"log":  tcell.ColorRosyBrown,
}

func GetColorByFileExt(name string) tcell.Color {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if color, ok := fileColors[strings.ToLower(ext)]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}
