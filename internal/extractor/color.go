package extractor

import (
	"regexp"
	"strconv"

	"github.com/rocketscienceinc/queens-board/internal/apperror"
	"github.com/rocketscienceinc/queens-board/internal/entity"
)

var backgroundColorPattern = regexp.MustCompile(`background-color:\s*rgb\((\d+),\s*(\d+),\s*(\d+)\)`)

// ParseBackgroundColor - reads the rgb(R, G, B) background-color declaration out of an inline style.
func ParseBackgroundColor(style string) (entity.Color, error) {
	matches := backgroundColorPattern.FindStringSubmatch(style)
	if matches == nil {
		return entity.Color{}, &apperror.MalformedColorError{RawText: style}
	}

	var channels [3]uint8
	for i, raw := range matches[1:] {
		value, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			return entity.Color{}, &apperror.InvalidChannelValueError{RawText: raw}
		}
		channels[i] = uint8(value)
	}

	return entity.Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}
