package landing

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/archetype/internal/ui/theme"
)

const bannerArt = `
 █████╗ ██████╗  ██████╗██╗  ██╗███████╗████████╗██╗   ██╗██████╗ ███████╗
██╔══██╗██╔══██╗██╔════╝██║  ██║██╔════╝╚══██╔══╝╚██╗ ██╔╝██╔══██╗██╔════╝
███████║██████╔╝██║     ███████║█████╗     ██║    ╚████╔╝ ██████╔╝█████╗
██╔══██║██╔══██╗██║     ██╔══██║██╔══╝     ██║     ╚██╔╝  ██╔═══╝ ██╔══╝
██║  ██║██║  ██║╚██████╗██║  ██║███████╗   ██║      ██║   ██║     ███████╗
╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚══════╝   ╚═╝      ╚═╝   ╚═╝     ╚══════╝`

const bannerCompact = "性 原 型 診 斷"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 74

// RenderBanner returns the banner in gold, falling back to the compact
// title when the terminal is narrower than the art or too short for it.
func RenderBanner(width int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact || width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
