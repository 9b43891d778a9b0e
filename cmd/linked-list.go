package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Avik32223/linked-list/internal/demo"
	"github.com/Avik32223/linked-list/internal/resp"
)

// parseValues accepts "5,8,1" or a RESP array such as "*2\r\n:5\r\n:8\r\n".
func parseValues(s string) ([]int, error) {
	if strings.HasPrefix(s, "*") {
		return resp.ParseIntArray([]byte(s))
	}
	res := make([]int, 0)
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}
		res = append(res, v)
	}
	return res, nil
}

func main() {
	var values, format string
	flag.StringVar(&values, "values", "", "comma separated ints to build the list from. ex 5,8,1")
	flag.StringVar(&format, "format", string(demo.Text), "output format. text or resp")
	flag.Parse()

	f, err := demo.ParseFormat(format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	vals := demo.DefaultValues
	if values != "" {
		if vals, err = parseValues(values); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if err := demo.Run(os.Stdout, vals, f); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
