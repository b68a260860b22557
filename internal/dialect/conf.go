package dialect

import (
	"bufio"
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/servermap/servermap/internal/decl"
)

// ParseConf parses the line-oriented per-server syntax:
//
//	# comment
//	server billing            (optional identity directive; first one wins)
//	produces orders@v2
//	consumes payments
//
// Anything else is skipped. Qualifiers after '@' are carried on the
// declaration but never participate in matching.
func ParseConf(path string, src []byte) (*ServerFile, error) {
	if !utf8.Valid(src) {
		return nil, &MalformedConfigError{Path: path, Reason: "not decodable as UTF-8 text"}
	}

	file := &ServerFile{Path: path, Dialect: Conf}

	scanner := bufio.NewScanner(bytes.NewReader(src))
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.Index(text, "#"); i >= 0 {
			text = text[:i]
		}
		if strings.HasPrefix(strings.TrimSpace(text), "//") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "server":
			if file.Identity == "" {
				file.Identity = fields[1]
			}
		case "produces":
			file.Decls = append(file.Decls, newConfDecl(path, line, decl.Produces, fields[1]))
		case "consumes":
			file.Decls = append(file.Decls, newConfDecl(path, line, decl.Consumes, fields[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &MalformedConfigError{Path: path, Reason: "failed to scan file", Err: err}
	}

	return file, nil
}

func newConfDecl(path string, line int, dir decl.Direction, raw string) decl.Declaration {
	stream, qualifier := decl.SplitQualifier(raw)
	return decl.Declaration{
		Direction: dir,
		Stream:    stream,
		Qualifier: qualifier,
		File:      path,
		Line:      line,
	}
}
