// Package util holds small helpers shared by the commands.
package util

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/xpslvs/stackr/constant"
	"github.com/xpslvs/stackr/filesystem"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

var (
	filenameInvalid  = regexp.MustCompile(`[\\/<>:;"'|?!*{}#%&^+,~\s]`)
	filenameCollapse = regexp.MustCompile(`__+`)
	filenameTrim     = regexp.MustCompile(`^[_\-.]+|[_\-.]+$`)
)

// SanitizeFilename turns s into a name that is safe on every platform.
func SanitizeFilename(s string) string {
	s = filenameInvalid.ReplaceAllString(s, "_")
	s = filenameCollapse.ReplaceAllString(s, "_")
	return filenameTrim.ReplaceAllString(s, "")
}

// Quantify formats count with the singular or plural noun.
func Quantify(count int, singular, plural string) string {
	return fmt.Sprintf("%d %s", count, lo.Ternary(count == 1, singular, plural))
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// TerminalSize returns the dimensions of the terminal attached to stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// FileStem returns the base name of path without its extension.
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ClearScreen clears the terminal.
func ClearScreen() {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case constant.Linux, constant.Darwin:
		cmd = exec.Command("tput", "clear")
	case constant.Windows:
		cmd = exec.Command("cmd", "/c", "cls")
	default:
		return
	}

	cmd.Stdout = os.Stdout
	_ = cmd.Run()
}

// PrintErasable prints msg on the current line and returns a function that erases it.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", utf8.RuneCountInString(msg)))
	}
}

// Ignore calls f and drops its error.
func Ignore(f func() error) {
	_ = f()
}

// Max returns the largest of items, or the zero value when there are none.
func Max[T constraints.Ordered](items ...T) (max T) {
	for i, item := range items {
		if i == 0 || item > max {
			max = item
		}
	}
	return
}

// Delete removes path, recursively when it is a directory.
func Delete(path string) error {
	fs := filesystem.API()
	stat, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if stat.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}
