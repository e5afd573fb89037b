package odinsrc

import (
	"os"
	"strings"

	"braces.dev/errtrace"
)

// _bindOp is the constant-binding operator
// that introduces a top-level declaration.
const _bindOp = "::"

// Scanner extracts documented declarations from Odin source text.
//
// The zero value is ready to use.
// Scanning is line-oriented and has no failure mode:
// lines the scanner cannot make sense of are skipped.
type Scanner struct{}

// ScanFile reads the file at path and scans its contents.
func (s *Scanner) ScanFile(path string) ([]Decl, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return s.Scan(path, src), nil
}

// Scan extracts declarations from src in order of appearance.
// path is attached verbatim to the declarations for provenance.
func (s *Scanner) Scan(path string, src []byte) []Decl {
	var (
		decls []Decl
		st    scanState
	)
	for i, line := range strings.Split(string(src), "\n") {
		if d, ok := st.feed(line); ok {
			d.File = path
			d.Line = i + 1
			decls = append(decls, d)
		}
	}
	return decls
}

// lineClass is the category a single source line falls into.
// Classification alone decides the scanner's state transition.
type lineClass int

const (
	lineBlank lineClass = iota
	lineComment
	linePrivateAttr
	lineDecl
	lineCode
)

// classifyLine categorizes a whitespace-trimmed source line.
// The checks run in precedence order:
// an attribute line wins over everything,
// and a line is a declaration only if it is
// neither an attribute, a comment, nor blank.
func classifyLine(trimmed string) lineClass {
	switch {
	case strings.Contains(trimmed, "@(private") || strings.HasPrefix(trimmed, "@private"):
		return linePrivateAttr
	case strings.HasPrefix(trimmed, "//"):
		return lineComment
	case trimmed == "":
		return lineBlank
	case strings.Contains(trimmed, _bindOp):
		return lineDecl
	default:
		return lineCode
	}
}

// scanState is the scanner's per-file state,
// reset implicitly by constructing a fresh value per file.
type scanState struct {
	// pending holds the comment lines seen since the last code line
	// or declaration, comment markers still attached.
	pending []string

	// pendingPrivate is set by an @(private) attribute line
	// and consumed by the next declaration.
	pendingPrivate bool

	// lastWasCode marks that the previous line was ordinary code,
	// so that a comment following it is a trailing comment
	// on that code rather than documentation for what comes next.
	lastWasCode bool
}

// feed advances the state machine by one line.
// It returns a declaration if the line completed one.
func (st *scanState) feed(line string) (Decl, bool) {
	trimmed := strings.TrimSpace(line)

	switch classifyLine(trimmed) {
	case linePrivateAttr:
		st.pendingPrivate = true
		st.lastWasCode = false

	case lineComment:
		if st.lastWasCode {
			// Trailing comment on the previous statement.
			// It must not document the next declaration.
			st.lastWasCode = false
			break
		}
		st.pending = append(st.pending, trimmed)

	case lineBlank:
		// Blank lines inside an open comment block
		// are paragraph separators and must survive.
		// Outside a block they carry no information.
		if len(st.pending) > 0 {
			st.pending = append(st.pending, "//")
		}
		st.lastWasCode = false

	case lineDecl:
		d, ok := st.cut(trimmed)
		st.pending = nil
		st.pendingPrivate = false
		st.lastWasCode = !ok
		return d, ok

	case lineCode:
		// Any comment accumulated so far documented nothing.
		st.pending = nil
		st.pendingPrivate = false
		st.lastWasCode = true
	}

	return Decl{}, false
}

// cut splits a declaration line into a Decl.
// ok is false if the line does not bind a single identifier.
func (st *scanState) cut(line string) (_ Decl, ok bool) {
	// Split on the first occurrence only:
	// the right-hand side may itself contain the operator
	// and is kept verbatim in that case.
	name, rest, _ := strings.Cut(line, _bindOp)
	name = strings.TrimSpace(name)
	rest = strings.TrimSpace(rest)
	if name == "" || strings.ContainsAny(name, " \t") {
		return Decl{}, false
	}

	// Strip the implementation body, keeping only the signature.
	if idx := strings.IndexByte(rest, '{'); idx >= 0 {
		rest = strings.TrimSpace(rest[:idx])
	}

	return Decl{
		Name:      name,
		Kind:      classifyKind(rest),
		Signature: rest,
		Doc:       st.doc(),
		Private:   st.pendingPrivate || privateName(name),
	}, true
}

// _kindTokens maps the leading token of a right-hand side
// to the declaration kind it introduces.
// The set is closed; everything else is a Constant.
var _kindTokens = []struct {
	token string
	kind  Kind
}{
	{"proc", Procedure},
	{"struct", Struct},
	{"enum", Enum},
	{"union", Union},
	{"bit_set", BitSet},
}

func classifyKind(rest string) Kind {
	for _, kt := range _kindTokens {
		if hasLeadingToken(rest, kt.token) {
			return kt.kind
		}
	}
	return Constant
}

// hasLeadingToken reports whether s starts with the word tok
// followed by a non-identifier character or nothing at all,
// so that "proc(" matches but "process_all" does not.
func hasLeadingToken(s, tok string) bool {
	if !strings.HasPrefix(s, tok) {
		return false
	}
	if len(s) == len(tok) {
		return true
	}
	return !isIdentByte(s[len(tok)])
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// privateName reports whether name is private by convention:
// a leading underscore or lowercase ASCII letter.
func privateName(name string) bool {
	c := name[0]
	return c == '_' || (c >= 'a' && c <= 'z')
}

// doc flattens the pending comment block into display text,
// stripping the comment markers.
// Trailing blank segments are dropped;
// interior ones survive as paragraph breaks.
func (st *scanState) doc() string {
	if len(st.pending) == 0 {
		return ""
	}
	lines := make([]string, len(st.pending))
	for i, l := range st.pending {
		l = strings.TrimPrefix(l, "//")
		l = strings.TrimPrefix(l, " ")
		lines[i] = l
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
