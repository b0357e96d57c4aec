package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/sproutfi/sprout/internal/ui/theme"
)

const bannerArt = `
 ███████╗██████╗ ██████╗  ██████╗ ██╗   ██╗████████╗
 ██╔════╝██╔══██╗██╔══██╗██╔═══██╗██║   ██║╚══██╔══╝
 ███████╗██████╔╝██████╔╝██║   ██║██║   ██║   ██║
 ╚════██║██╔═══╝ ██╔══██╗██║   ██║██║   ██║   ██║
 ███████║██║     ██║  ██║╚██████╔╝╚██████╔╝   ██║
 ╚══════╝╚═╝     ╚═╝  ╚═╝ ╚═════╝  ╚═════╝    ╚═╝`

const bannerCompact = "S P R O U T"

// RenderBanner returns the SPROUT banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 56 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 56 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
