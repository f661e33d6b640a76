package classify

import (
	"fmt"

	"github.com/scottidler/obsidian-bookmark/internal/apperr"
)

// Kind identifies which handler processes a classified link.
type Kind int

const (
	KindShorts Kind = iota
	KindYouTube
	KindWebLink
)

func (k Kind) String() string {
	switch k {
	case KindShorts:
		return "shorts"
	case KindYouTube:
		return "youtube"
	default:
		return "weblink"
	}
}

// Horizontal presets used for regular video and image embeds.
var resolutions = map[string][2]int{
	"nHD":   {640, 360},
	"FWVGA": {854, 480},
	"qHD":   {960, 540},
	"SD":    {1280, 720},
	"WXGA":  {1366, 768},
	"HD+":   {1600, 900},
	"FHD":   {1920, 1080},
	"WQHD":  {2560, 1440},
	"QHD+":  {3200, 1800},
	"4K":    {3840, 2160},
	"5K":    {5120, 2880},
	"8K":    {7680, 4320},
	"16K":   {15360, 8640},
}

// Vertical presets used for shorts embeds.
var shortsResolutions = map[string][2]int{
	"480p":  {480, 854},
	"720p":  {720, 1280},
	"1080p": {1080, 1920},
	"1440p": {1440, 2560},
	"2160p": {2160, 3840},
}

// lookupResolution resolves a preset name against the table selected by the
// rule name: the vertical table for "shorts", the horizontal table otherwise.
func lookupResolution(ruleName, key string) (int, int, error) {
	table := resolutions
	if ruleName == "shorts" {
		table = shortsResolutions
	}
	res, ok := table[key]
	if !ok {
		return 0, 0, fmt.Errorf("%w: preset %q for link %q", apperr.ErrResolutionNotFound, key, ruleName)
	}
	return res[0], res[1], nil
}
