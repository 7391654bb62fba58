// Package termcolor decides whether the summary is coloured and builds the
// SGR sequences for it.
package termcolor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode is the value of --color / HOOKSPOT_COLOR.
type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

var modeNames = map[ColorMode]string{ModeAuto: "auto", ModeAlways: "always", ModeNever: "never"}

func (m ColorMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "auto"
}

// ParseMode accepts auto, always and never in any case; empty means auto.
func ParseMode(v string) (ColorMode, error) {
	want := strings.ToLower(strings.TrimSpace(v))
	if want == "" {
		return ModeAuto, nil
	}
	for mode, name := range modeNames {
		if name == want {
			return mode, nil
		}
	}
	return ModeAuto, fmt.Errorf("invalid --color: %s (want auto|always|never)", v)
}

// EnvMap splits KEY=VALUE pairs as returned by os.Environ.
func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		env[key] = value
	}
	return env
}

// Resolve reports whether the summary written to w is coloured.
//
// always and never are taken literally. auto colours only a terminal w,
// and the environment can veto or force that: TERM=dumb, NO_COLOR and
// CLICOLOR=0 switch colour off before CLICOLOR_FORCE or FORCE_COLOR (any
// value but 0) switch it on. A writer that is not an *os.File never
// auto-colours.
func Resolve(mode ColorMode, w io.Writer, env map[string]string) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	get := func(k string) string { return strings.TrimSpace(env[k]) }
	switch {
	case strings.EqualFold(get("TERM"), "dumb"), get("NO_COLOR") != "", get("CLICOLOR") == "0":
		return false
	case forced(get("CLICOLOR_FORCE")), forced(get("FORCE_COLOR")):
		return true
	}
	return term.IsTerminal(int(f.Fd()))
}

func forced(v string) bool {
	return v != "" && v != "0"
}
