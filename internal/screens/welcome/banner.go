package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/learnyst/learnyst/internal/ui/theme"
)

const bannerArt = `
 ██╗     ███████╗ █████╗ ██████╗ ███╗   ██╗██╗   ██╗███████╗████████╗
 ██║     ██╔════╝██╔══██╗██╔══██╗████╗  ██║╚██╗ ██╔╝██╔════╝╚══██╔══╝
 ██║     █████╗  ███████║██████╔╝██╔██╗ ██║ ╚████╔╝ ███████╗   ██║
 ██║     ██╔══╝  ██╔══██║██╔══██╗██║╚██╗██║  ╚██╔╝  ╚════██║   ██║
 ███████╗███████╗██║  ██║██║  ██║██║ ╚████║   ██║   ███████║   ██║
 ╚══════╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝   ╚═╝   ╚══════╝   ╚═╝`

const bannerCompact = "L E A R N Y S T   A I"

// RenderBanner returns the LEARNYST banner styled in the primary color.
// Uses a compact fallback when the terminal is narrow or short.
func RenderBanner(width, height int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 72 || height < 34 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
