// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package shader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Parse reads all shader definitions from a script.
//
// The path is used in error messages only. Unknown directives are
// ignored, so scripts written for newer engine forks still parse.
// Structural errors, including lines longer than
// [bufio.MaxScanTokenSize], are reported as [ParseError] with a 1-based
// line number and discard the whole script.
func Parse(path string, r io.Reader) ([]Shader, error) {
	tokens, lastLine, err := tokenize(r)
	if err != nil {
		// Overlong lines are malformed input, not an I/O failure.
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ParseError{
				Path: path,
				Line: lastLine + 1,
				Msg:  "line too long",
			}
		}

		return nil, fmt.Errorf("read shader script: %w", err)
	}

	p := &parser{
		path:     path,
		tokens:   tokens,
		lastLine: lastLine,
	}

	return p.parse()
}

type token struct {
	text string
	line int
}

func tokenize(r io.Reader) ([]token, int, error) {
	var (
		tokens    []token
		inComment bool
		line      int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++

		var text string

		text, inComment = stripComments(scanner.Text(), inComment)

		for _, field := range splitLine(text) {
			tokens = append(tokens, token{text: field, line: line})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, line, err //nolint:wrapcheck
	}

	return tokens, line, nil
}

// stripComments removes // and /* */ comments from a single line.
// inComment carries the open block comment state across lines.
func stripComments(s string, inComment bool) (string, bool) {
	var b strings.Builder

	for {
		if inComment {
			end := strings.Index(s, "*/")
			if end < 0 {
				return b.String(), true
			}

			s = s[end+2:]
			inComment = false
		}

		lineIdx := strings.Index(s, "//")
		blockIdx := strings.Index(s, "/*")

		switch {
		case blockIdx >= 0 && (lineIdx < 0 || blockIdx < lineIdx):
			b.WriteString(s[:blockIdx])

			s = s[blockIdx+2:]
			inComment = true
		case lineIdx >= 0:
			b.WriteString(s[:lineIdx])
			return b.String(), false
		default:
			b.WriteString(s)
			return b.String(), false
		}
	}
}

// splitLine splits a line into fields, separating braces glued to
// words, so both "textures/foo {" and "textures/foo{" tokenize alike.
func splitLine(s string) []string {
	var tokens []string

	for _, field := range strings.Fields(s) {
		for field != "" {
			idx := strings.IndexAny(field, "{}")
			if idx < 0 {
				tokens = append(tokens, field)
				break
			}

			if idx > 0 {
				tokens = append(tokens, field[:idx])
			}

			tokens = append(tokens, string(field[idx]))
			field = field[idx+1:]
		}
	}

	return tokens
}

type parser struct {
	path     string
	tokens   []token
	pos      int
	lastLine int
}

func (p *parser) next() (token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}

	return tok, ok
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}

	return p.tokens[p.pos], true
}

// lineArgs consumes the remaining word tokens of the given line.
func (p *parser) lineArgs(line int) []string {
	var args []string

	for {
		tok, ok := p.peek()
		if !ok || tok.line != line || tok.text == "{" || tok.text == "}" {
			return args
		}

		p.pos++

		args = append(args, tok.text)
	}
}

func (p *parser) errorf(line int, format string, args ...any) error {
	return &ParseError{
		Path: p.path,
		Line: line,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func (p *parser) parse() ([]Shader, error) {
	var shaders []Shader

	for {
		tok, ok := p.next()
		if !ok {
			return shaders, nil
		}

		if tok.text == "{" || tok.text == "}" {
			return nil, p.errorf(
				tok.line, "expected shader name, got %q", tok.text,
			)
		}

		s, err := p.parseBody(tok.text)
		if err != nil {
			return nil, err
		}

		shaders = append(shaders, *s)
	}
}

func (p *parser) parseBody(name string) (*Shader, error) {
	tok, ok := p.next()
	if !ok {
		return nil, p.errorf(
			p.lastLine, "unexpected end of file, expected {",
		)
	}

	if tok.text != "{" {
		return nil, p.errorf(tok.line, "expected {, got %q", tok.text)
	}

	s := New(name)

	for {
		tok, ok := p.next()
		if !ok {
			return nil, p.errorf(
				p.lastLine, "unexpected end of file in shader %q", name,
			)
		}

		switch tok.text {
		case "}":
			slices.Sort(s.SurfaceParms)
			s.SurfaceParms = slices.Compact(s.SurfaceParms)

			return s, nil
		case "{":
			stage, err := p.parseStage(name)
			if err != nil {
				return nil, err
			}

			s.Stages = append(s.Stages, stage)
		default:
			p.parseDirective(s, tok)
		}
	}
}

func (p *parser) parseStage(name string) (Stage, error) {
	var stage Stage

	for {
		tok, ok := p.next()
		if !ok {
			return Stage{}, p.errorf(
				p.lastLine, "unexpected end of file in stage of shader %q",
				name,
			)
		}

		switch tok.text {
		case "}":
			return stage, nil
		case "{":
			return Stage{}, p.errorf(
				tok.line, "unexpected { in stage of shader %q", name,
			)
		default:
			p.parseStageDirective(&stage, tok)
		}
	}
}

func (p *parser) parseDirective(s *Shader, tok token) {
	args := p.lineArgs(tok.line)

	switch strings.ToLower(tok.text) {
	case "qer_editorimage":
		if len(args) > 0 {
			s.EditorImage = args[0]
		}
	case "q3map_lightimage":
		if len(args) > 0 {
			s.LightImage = args[0]
		}
	case "surfaceparm":
		if len(args) > 0 {
			s.SurfaceParms = append(
				s.SurfaceParms, strings.ToLower(args[0]),
			)
		}
	case "cull":
		if len(args) > 0 {
			s.Culling = parseCull(args[0])
		}
	}
}

func (p *parser) parseStageDirective(stage *Stage, tok token) {
	args := p.lineArgs(tok.line)

	switch strings.ToLower(tok.text) {
	case "map", "clampmap":
		if len(args) > 0 {
			stage.Map = args[0]
		}
	case "animmap":
		// The first argument is the frame frequency. The first frame
		// stands in for the whole animation.
		if len(args) > 1 {
			stage.Map = args[1]
		}
	case "blendfunc":
		stage.Blend = parseBlendFunc(args)
	}
}

func parseCull(value string) CullType {
	switch strings.ToLower(value) {
	case "none", "twosided", "disable":
		return CullNone
	case "back", "backside", "backsided":
		return CullBack
	default:
		return CullFront
	}
}

func parseBlendFunc(args []string) BlendFunc {
	switch len(args) {
	case 1:
		switch strings.ToLower(args[0]) {
		case "add":
			return BlendFunc{Src: BlendOne, Dest: BlendOne}
		case "filter":
			return BlendFunc{Src: BlendDestColor, Dest: BlendZero}
		case "blend":
			return BlendFunc{
				Src:  BlendSrcAlpha,
				Dest: BlendOneMinusSrcAlpha,
			}
		}
	case 2: //nolint:gomnd,mnd
		return BlendFunc{
			Src:  strings.ToUpper(args[0]),
			Dest: strings.ToUpper(args[1]),
		}
	}

	return BlendFunc{}
}
