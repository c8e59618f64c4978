package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"sparkgfx/gfx/canvas"
	"sparkgfx/gfx/fonts"
)

// guard runs fn and turns a panic into a logged error and a panic screen.
func (s *system) guard(fn func() error) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		stack := debug.Stack()
		s.logf("app panic: %v", v)
		for _, line := range strings.Split(string(stack), "\n") {
			if line != "" && s.log != nil {
				s.log.WriteLineString(line)
			}
		}
		s.panicScreen(v, stack)
		err = fmt.Errorf("app: panic: %v", v)
	}()
	return fn()
}

func (s *system) panicScreen(v any, stack []byte) {
	if s.c == nil || s.off {
		return
	}
	font := fonts.Default()
	s.c.Clear(canvas.White)

	lines := []string{"sparkgfx panic:", fmt.Sprintf("panic: %v", v), "stack:"}
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}

	cols := max(s.c.Width()/font.Width, 1)
	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+font.Height > s.c.Height() {
				_ = s.c.Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			_ = s.c.DrawString(chunk, font.Font, canvas.Black, 0, y)
			y += font.Height
			line = strings.TrimLeft(rest, " \t")
		}
	}
	_ = s.c.Display()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
