package display

import (
	"fmt"
	"io"

	"github.com/srinivassivaratri/namemate/internal/term"
)

const bannerArt = `                                            _
 _ __   __ _ _ __ ___   ___ _ __ ___   __ _| |_ ___
| '_ \ / _` + "`" + ` | '_ ` + "`" + ` _ \ / _ \ '_ ` + "`" + ` _ \ / _` + "`" + ` | __/ _ \
| | | | (_| | | | | | |  __/ | | | | | (_| | ||  __/
|_| |_|\__,_|_| |_| |_|\___|_| |_| |_|\__,_|\__\___|`

// PrintBanner writes the ASCII art banner, bold magenta when colors are on.
func PrintBanner(w io.Writer, version string) {
	fmt.Fprintln(w, term.Paint(term.Accent, bannerArt))
	if version != "" {
		fmt.Fprintln(w, term.Paint(term.Faint, "content-based file renamer "+version))
	}
	fmt.Fprintln(w)
}
