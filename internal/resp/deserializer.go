package resp

import (
	"fmt"
	"strconv"
	"strings"
)

func eatBulkString(data []byte, c int) (bytesAte int) {
	t := string(data[c:])
	// minimum valid empty string
	if len(t) < len("$0\r\n\r\n") {
		return
	}

	if rune(t[0]) != '$' {
		return
	}

	t = t[1:]
	tSplit := strings.SplitN(t, "\r\n", 3)
	if len(tSplit) < 3 {
		return
	}

	tLen, err := strconv.Atoi(tSplit[0])
	if err != nil {
		return
	}

	if tLen != len(tSplit[1]) {
		return
	}

	bytesAte = len(fmt.Sprintf("$%s\r\n%s\r\n", tSplit[0], tSplit[1]))
	return
}

func eatInt(data []byte, c int) (bytesAte int) {
	t := string(data[c:])
	if len(t) < len(":0\r\n") || rune(t[0]) != ':' {
		return
	}

	end := strings.Index(t, "\r\n")
	if end < 2 {
		return
	}
	if _, err := strconv.Atoi(t[1:end]); err != nil {
		return
	}
	bytesAte = end + len("\r\n")
	return
}

// eatArray returns how many bytes starting at c form a complete array of
// integers or bulk strings, or 0 when no such array is there.
func eatArray(data []byte, c int) (bytesAte int) {
	t := string(data[c:])
	// minimum valid empty array
	if len(t) < len("*0\r\n") {
		return
	}

	if rune(t[0]) != '*' {
		return
	}

	t = t[1:]
	tSplit := strings.SplitN(t, "\r\n", 2)
	if len(tSplit) < 2 {
		return
	}

	tLen, err := strconv.Atoi(tSplit[0])
	if err != nil {
		return
	}
	ct := 0
	total := 0
	for total < tLen {
		r := []byte(tSplit[1][ct:])
		cc := eatInt(r, 0)
		if cc == 0 {
			cc = eatBulkString(r, 0)
		}
		if cc != 0 {
			ct += cc
			total++
			continue
		}
		break
	}
	ct += len(fmt.Sprintf("*%s\r\n", tSplit[0]))
	if total != tLen {
		return
	}
	bytesAte = c + ct
	return
}

func parseBulkString(s string) (res string, err error) {
	s = s[1:]
	return strings.SplitN(s, "\r\n", 3)[1], nil
}

// ParseIntArray decodes a RESP array whose elements are integers, or bulk
// strings holding integers, as sent by redis clients.
func ParseIntArray(data []byte) ([]int, error) {
	n := eatArray(data, 0)
	if n == 0 {
		return nil, fmt.Errorf("not a RESP array of integers: %q", data)
	}
	elems := strings.SplitN(string(data[1:n]), "\r\n", 2)[1]

	c := 0
	res := make([]int, 0)
	for c < len(elems) {
		r := []byte(elems[c:])
		if cc := eatInt(r, 0); cc != 0 {
			v, _ := strconv.Atoi(elems[c+1 : c+cc-2])
			res = append(res, v)
			c += cc
			continue
		}
		if cc := eatBulkString(r, 0); cc != 0 {
			s, _ := parseBulkString(elems[c : c+cc])
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("array element %q is not an integer", s)
			}
			res = append(res, v)
			c += cc
			continue
		}

		return nil, fmt.Errorf("unknown element type in array: %#v", elems)
	}

	return res, nil
}
