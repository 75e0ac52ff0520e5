// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

// maxBraceRangeItems bounds "{1..N}" expansion size.
const maxBraceRangeItems = 1024

var (
	numericRangeRE = regexp.MustCompile(`^\{(-?\d+)\.\.(-?\d+)(?:\.\.(-?\d+))?\}`)
	letterRangeRE  = regexp.MustCompile(`^\{([a-zA-Z])\.\.([a-zA-Z])(?:\.\.(-?\d+))?\}`)
)

// compiledPattern is one glob translated into an RE2 body.
type compiledPattern struct {
	// re is the pattern compiled alone, used for negated patterns.
	re *regexp.Regexp
	// body is the unanchored regexp source, joined into matcher unions.
	body string
	// source is original source pattern.
	source string
	// negated means source pattern starts with "!".
	negated bool
}

// compilePattern validates and translates one glob pattern.
func compilePattern(pattern string, opts CompileOptions) (*compiledPattern, error) {
	src := pattern
	negated := false
	for strings.HasPrefix(src, "!") && !strings.HasPrefix(src, "!(") {
		negated = !negated
		src = src[1:]
	}

	src = normalizePattern(src)
	if src == "" {
		return nil, syntaxError(pattern, -1, "empty pattern")
	}

	// doublestar owns bracket, brace and escape balance; extglob groups are ours.
	if !doublestar.ValidatePattern(src) {
		return nil, syntaxError(pattern, -1, "unbalanced brackets or braces, or dangling escape")
	}

	p := &globParser{pattern: pattern, src: src, dot: opts.Dot}
	body, err := p.sequence("", true)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(anchorBodies([]string{body}, opts.CaseInsensitive))
	if err != nil {
		return nil, syntaxError(pattern, -1, "%v", err)
	}

	return &compiledPattern{
		re:      re,
		body:    body,
		source:  pattern,
		negated: negated,
	}, nil
}

// anchorBodies joins translated bodies into one anchored alternation.
func anchorBodies(bodies []string, caseInsensitive bool) string {
	var b strings.Builder
	if caseInsensitive {
		b.WriteString("(?i)")
	}

	b.WriteString("^(?:")
	for i, body := range bodies {
		if i > 0 {
			b.WriteByte('|')
		}

		b.WriteString("(?:")
		b.WriteString(body)
		b.WriteByte(')')
	}

	b.WriteString(")$")
	return b.String()
}

// globParser translates glob source into RE2 syntax.
type globParser struct {
	// pattern is the original pattern reported in errors.
	pattern string
	// src is the normalized pattern being translated.
	src string
	// pos is the current byte offset in src.
	pos int
	// dot lets wildcards match dot-leading segments.
	dot bool
}

// sequence translates tokens until end of input or one of stop bytes.
// segStart reports whether the first token starts a path segment.
func (p *globParser) sequence(stop string, segStart bool) (string, error) {
	var b strings.Builder

	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if strings.IndexByte(stop, c) >= 0 {
			break
		}

		if isExtglobPrefix(c) && p.at(p.pos+1) == '(' {
			group, err := p.extglob()
			if err != nil {
				return "", err
			}

			b.WriteString(group)
			segStart = false
			continue
		}

		switch c {
		case '\\':
			// Escape balance was validated, next rune always exists.
			r, size := utf8.DecodeRuneInString(p.src[p.pos+1:])
			b.WriteString(regexp.QuoteMeta(string(r)))
			p.pos += 1 + size
			segStart = false

		case '/':
			b.WriteByte('/')
			p.pos++
			segStart = true

		case '*':
			segStart = p.star(&b, stop, segStart)

		case '?':
			b.WriteString(p.anyChar(segStart))
			p.pos++
			segStart = false

		case '[':
			class, err := p.charClass()
			if err != nil {
				return "", err
			}

			b.WriteString(class)
			segStart = false

		case '{':
			if err := p.brace(&b, stop, segStart); err != nil {
				return "", err
			}

			segStart = false

		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			b.WriteString(regexp.QuoteMeta(string(r)))
			p.pos += size
			segStart = false
		}
	}

	return b.String(), nil
}

// star translates a run of "*" and reports whether the next token starts a segment.
func (p *globParser) star(b *strings.Builder, stop string, segStart bool) bool {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] == '*' {
		p.pos++
	}

	if p.pos-start >= 2 && segStart && p.segmentEnd(stop) {
		return p.globstar(b)
	}

	switch {
	case !segStart:
		b.WriteString(`[^/]*`)
	case p.segmentEnd(stop):
		// A lone "*" segment needs at least one character.
		b.WriteString(p.segment())
	case p.dot:
		b.WriteString(`[^/]*`)
	case p.at(p.pos) == '.':
		b.WriteString(`[^/.][^/]*`)
	default:
		b.WriteString(`(?:[^/.][^/]*)?`)
	}

	return false
}

// globstar translates a "**" path segment.
func (p *globParser) globstar(b *strings.Builder) bool {
	seg := p.segment()

	if p.at(p.pos) == '/' {
		p.pos++
		b.WriteString(`(?:` + seg + `/)*`)
		return true
	}

	// Trailing "/**" also matches the parent path itself.
	if prefix, ok := strings.CutSuffix(b.String(), "/"); ok {
		b.Reset()
		b.WriteString(prefix)
		b.WriteString(`(?:/` + seg + `)*`)
		return false
	}

	b.WriteString(`(?:` + seg + `(?:/` + seg + `)*)?`)
	return false
}

// segment returns regexp source for one whole non-empty path segment.
func (p *globParser) segment() string {
	if p.dot {
		return `[^/]+`
	}

	return `[^/.][^/]*`
}

// anyChar returns regexp source for "?".
func (p *globParser) anyChar(segStart bool) string {
	if segStart && !p.dot {
		return `[^/.]`
	}

	return `[^/]`
}

// segmentEnd reports whether the current position ends a path segment.
func (p *globParser) segmentEnd(stop string) bool {
	if p.pos >= len(p.src) {
		return true
	}

	c := p.src[p.pos]
	return c == '/' || strings.IndexByte(stop, c) >= 0
}

// at returns byte at index or zero when out of range.
func (p *globParser) at(i int) byte {
	if i < 0 || i >= len(p.src) {
		return 0
	}

	return p.src[i]
}

// charClass translates a "[...]" class starting at current position.
func (p *globParser) charClass() (string, error) {
	open := p.pos
	end := findCharClassEnd(p.src, open)
	if end < 0 {
		return "", syntaxError(p.pattern, open, "unclosed character class")
	}

	var b strings.Builder
	b.WriteByte('[')

	idx := open + 1
	negated := false
	if c := p.src[idx]; c == '!' || c == '^' {
		// Both "[!x]" and "[^x]" negate the class.
		negated = true
		b.WriteByte('^')
		idx++
	}

	for idx < end {
		c := p.src[idx]
		switch {
		case c == '[' && p.at(idx+1) == ':':
			closing := strings.Index(p.src[idx+2:end], ":]")
			if closing < 0 {
				b.WriteString(`\[`)
				idx++
				continue
			}

			b.WriteString(p.src[idx : idx+2+closing+2])
			idx += 2 + closing + 2

		case c == '\\':
			r, size := utf8.DecodeRuneInString(p.src[idx+1:])
			b.WriteString(classEscape(r))
			idx += 1 + size

		default:
			r, size := utf8.DecodeRuneInString(p.src[idx:])
			if r == '[' || r == '^' || r == '\\' {
				b.WriteByte('\\')
			}

			b.WriteRune(r)
			idx += size
		}
	}

	if negated {
		// Negated classes never cross a separator.
		b.WriteByte('/')
	}

	b.WriteByte(']')
	p.pos = end + 1
	return b.String(), nil
}

// findCharClassEnd locates closing bracket for a glob char class.
func findCharClassEnd(pat string, start int) int {
	if start < 0 || start >= len(pat) || pat[start] != '[' {
		return -1
	}

	idx := start + 1
	if idx < len(pat) && (pat[idx] == '!' || pat[idx] == '^') {
		idx++
	}

	if idx >= len(pat) || pat[idx] == ']' {
		return -1
	}

	for ; idx < len(pat); idx++ {
		switch pat[idx] {
		case '\\':
			idx++
		case '[':
			if idx+1 < len(pat) && pat[idx+1] == ':' {
				if closing := strings.Index(pat[idx+2:], ":]"); closing >= 0 {
					idx += 2 + closing + 1
				}
			}
		case ']':
			return idx
		}
	}

	return -1
}

// classEscape escapes one rune for use inside a regexp class.
func classEscape(r rune) string {
	if r < utf8.RuneSelf && !isAlnum(byte(r)) {
		return `\` + string(r)
	}

	return string(r)
}

// brace translates a "{...}" group starting at current position into b.
func (p *globParser) brace(b *strings.Builder, stop string, segStart bool) error {
	rest := p.src[p.pos:]
	if m := numericRangeRE.FindStringSubmatch(rest); m != nil {
		items, err := numericRange(m[1], m[2], m[3])
		if err != nil {
			return syntaxError(p.pattern, p.pos, "%v", err)
		}

		p.pos += len(m[0])
		b.WriteString(quotedAlternation(items))
		return nil
	}

	if m := letterRangeRE.FindStringSubmatch(rest); m != nil {
		items, err := letterRange(m[1][0], m[2][0], m[3])
		if err != nil {
			return syntaxError(p.pattern, p.pos, "%v", err)
		}

		p.pos += len(m[0])
		b.WriteString(quotedAlternation(items))
		return nil
	}

	open := p.pos
	p.pos++

	alts := make([]string, 0, 4)
	globstars := make([]bool, 0, 4)
	for {
		altStart := p.pos
		alt, err := p.sequence(",}", segStart)
		if err != nil {
			return err
		}

		alts = append(alts, alt)
		globstars = append(globstars, p.src[altStart:p.pos] == "**")
		if p.pos >= len(p.src) {
			return syntaxError(p.pattern, open, "unclosed brace group")
		}

		if p.src[p.pos] == '}' {
			p.pos++
			break
		}

		p.pos++
	}

	if len(alts) == 1 {
		// "{a}" has nothing to expand and stays literal.
		b.WriteString(`\{` + alts[0] + `\}`)
		return nil
	}

	// A "**" alternative closing a path, as in "a/{**,c}", also matches the
	// parent path, the same way a trailing "/**" does.
	if segStart && slices.Contains(globstars, true) && p.segmentEnd(stop) {
		if prefix, ok := strings.CutSuffix(b.String(), "/"); ok {
			seg := p.segment()
			for i, lone := range globstars {
				if lone {
					alts[i] = seg + `(?:/` + seg + `)*`
				}
			}

			b.Reset()
			b.WriteString(prefix)
			b.WriteString(`(?:/(?:` + strings.Join(alts, "|") + `))?`)
			return nil
		}
	}

	b.WriteString("(?:" + strings.Join(alts, "|") + ")")
	return nil
}

// extglob translates "@(..)", "?(..)", "+(..)" and "*(..)" groups.
func (p *globParser) extglob() (string, error) {
	open := p.pos
	kind := p.src[open]
	if kind == '!' {
		return "", syntaxError(p.pattern, open, "negated extglob %q is not supported", "!(...)")
	}

	p.pos += 2

	alts := make([]string, 0, 4)
	for {
		alt, err := p.sequence("|)", false)
		if err != nil {
			return "", err
		}

		alts = append(alts, alt)
		if p.pos >= len(p.src) {
			return "", syntaxError(p.pattern, open, "unclosed extglob group")
		}

		if p.src[p.pos] == ')' {
			p.pos++
			break
		}

		p.pos++
	}

	group := "(?:" + strings.Join(alts, "|") + ")"
	switch kind {
	case '?':
		group += "?"
	case '+':
		group += "+"
	case '*':
		group += "*"
	}

	return group, nil
}

// isExtglobPrefix reports whether c introduces an extglob group before "(".
func isExtglobPrefix(c byte) bool {
	switch c {
	case '@', '?', '+', '*', '!':
		return true
	default:
		return false
	}
}

// numericRange expands "{from..to..step}" into decimal strings.
func numericRange(fromSrc, toSrc, stepSrc string) ([]string, error) {
	from, err := strconv.Atoi(fromSrc)
	if err != nil {
		return nil, fmt.Errorf("range start: %w", err)
	}

	to, err := strconv.Atoi(toSrc)
	if err != nil {
		return nil, fmt.Errorf("range end: %w", err)
	}

	step, err := rangeStep(stepSrc)
	if err != nil {
		return nil, err
	}

	width := 0
	if isZeroPadded(fromSrc) || isZeroPadded(toSrc) {
		width = max(len(strings.TrimPrefix(fromSrc, "-")), len(strings.TrimPrefix(toSrc, "-")))
	}

	items := make([]string, 0, 8)
	for v := from; ; v += rangeDirection(from, to) * step {
		if (from <= to && v > to) || (from > to && v < to) {
			break
		}

		if len(items) == maxBraceRangeItems {
			return nil, fmt.Errorf("range expands to more than %d items", maxBraceRangeItems)
		}

		items = append(items, padNumber(v, width))
	}

	return items, nil
}

// letterRange expands "{a..e..step}" into single-letter strings.
func letterRange(from, to byte, stepSrc string) ([]string, error) {
	step, err := rangeStep(stepSrc)
	if err != nil {
		return nil, err
	}

	items := make([]string, 0, 8)
	for v := int(from); ; v += rangeDirection(int(from), int(to)) * step {
		if (from <= to && v > int(to)) || (from > to && v < int(to)) {
			break
		}

		items = append(items, string(rune(v)))
	}

	return items, nil
}

// rangeStep parses optional range step, zero and empty mean 1.
func rangeStep(src string) (int, error) {
	if src == "" {
		return 1, nil
	}

	step, err := strconv.Atoi(src)
	if err != nil {
		return 0, fmt.Errorf("range step: %w", err)
	}

	if step < 0 {
		step = -step
	}

	if step == 0 {
		step = 1
	}

	return step, nil
}

func rangeDirection(from, to int) int {
	if from > to {
		return -1
	}

	return 1
}

func isZeroPadded(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return len(s) > 1 && s[0] == '0'
}

func padNumber(v, width int) string {
	s := strconv.Itoa(v)
	if width == 0 {
		return s
	}

	sign := ""
	if v < 0 {
		sign = "-"
		s = s[1:]
	}

	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}

	return sign + s
}

// quotedAlternation joins literal items into a non-capturing group.
func quotedAlternation(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = regexp.QuoteMeta(item)
	}

	return "(?:" + strings.Join(quoted, "|") + ")"
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
