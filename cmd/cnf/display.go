package main

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/pterm/pterm"
)

var (
	successColorFG = pterm.FgLightGreen
	warnColorFG    = pterm.FgYellow
	warnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColorFG   = pterm.FgRed
	errorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
)

func printError(err error) {
	fmt.Fprintln(os.Stderr, errorStyleBG.Sprint("Error")+" "+errorColorFG.Sprint(err.Error()))
}

func printWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warnStyleBG.Sprint("Warning")+" "+warnColorFG.Sprint(msg))
}

// printErrors prints every error of an error list, such as the ones
// returned by golang.org/x/exp/ebnf, on its own line.
func printErrors(w io.Writer, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			printWarning(w, fmt.Sprint(v.Index(i).Interface()))
		}
	} else {
		printWarning(w, err.Error())
	}
}
