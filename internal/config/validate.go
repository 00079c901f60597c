package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus structured findings
// the UI can show.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Jobs.File = strings.TrimSpace(out.Jobs.File)
	out.Jobs.HTMLFile = strings.TrimSpace(out.Jobs.HTMLFile)
	out.App.DataDir = strings.TrimSpace(out.App.DataDir)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Jobs.File == "" && out.Jobs.HTMLFile == "" {
		res.addWarn("no jobs.file or jobs.html_file configured; the engine will serve the built-in seed list.")
	}

	return out, res
}
