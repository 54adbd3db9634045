package env

import (
	"os"
	"strconv"
)

func Debug() bool {
	return os.Getenv("DEBUG") != "" || os.Getenv("UML_DEBUG") == "1"
}

// StrictRelationships turns on the store's relationship whitelist check for every
// store built through the uml package.
func StrictRelationships() bool {
	return os.Getenv("UML_STRICT_RELATIONSHIPS") == "1"
}

// FontSize overrides the base label font size used by the layout canvas.
func FontSize() (int, bool) {
	if s := os.Getenv("UML_FONT_SIZE"); s != "" {
		i, err := strconv.Atoi(s)
		if err == nil && i > 0 {
			return i, true
		}
	}
	return -1, false
}

func Timeout() (int, bool) {
	if s := os.Getenv("UML_TIMEOUT"); s != "" {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return int(i), true
		}
	}
	return -1, false
}
