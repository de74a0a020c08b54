package main

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

type config struct {
	In        string
	Out       string
	Namespace string
	Only      string
	Handler   string
	Package   string
	Lenient   bool
	Dump      bool
	Verbose   bool
}

// Artifact is one rendered output file.
type Artifact struct {
	Kind      ArtifactKind
	Namespace Namespace
	Name      string // space-separated words naming the generated table
	Body      []byte
}

// Filename derives the output file name from the artifact's name.
func (a Artifact) Filename(asGo bool) string {
	if asGo {
		return makeIdentUnderscores(a.Name) + ".go"
	}
	return makeIdentUnderscores(a.Name) + ".txt"
}

// artifactName returns the words each kind of table is named by. The same
// words produce both the file name and, in Go source mode, the variable.
func artifactName(kind ArtifactKind, ns Namespace) string {
	cb := ns == CBPrefixed
	switch kind {
	case KindStubs:
		if cb {
			return "cb instructions"
		}
		return "instructions"
	case KindLookup:
		if cb {
			return "prefix instr debug lookup"
		}
		return "instr debug lookup"
	case KindLengths:
		return "instr len"
	case KindCycles:
		if cb {
			return "cb opcode cycles"
		}
		return "opcode cycles"
	default:
		return string(kind)
	}
}

// varName gives the Go identifier for an artifact. The lookup and cycle
// tables are shared with other packages and so are exported.
func varName(kind ArtifactKind, ns Namespace) string {
	name := artifactName(kind, ns)
	switch kind {
	case KindLookup, KindCycles:
		return makeIdentTitle(name)
	default:
		return makeIdentCamel(name)
	}
}

// generateArtifacts renders each requested kind of table. Stub, lookup
// and cycle tables come from the selected namespace; the length table
// always describes the unprefixed opcodes, because a prefixed instruction's
// length is accounted for by its prefix byte.
func generateArtifacts(isa *ISA, ns Namespace, kinds []ArtifactKind, handler, pkg string) ([]Artifact, error) {
	t := isa.Table(ns)
	if t == nil {
		return nil, xerrors.Errorf("unknown namespace %q", ns)
	}
	if handler == "" {
		handler = defaultHandler
	}
	asGo := pkg != ""
	if asGo && !handlerIsFunc(handler) {
		return nil, xerrors.Errorf("handler %q is not a function type", handler)
	}

	stubs, lookup := buildListings(t)

	var ret []Artifact
	for _, kind := range kinds {
		artNS := ns
		if kind == KindLengths {
			artNS = Unprefixed
		}
		name := varName(kind, artNS)

		var buf bytes.Buffer
		var decl []byte
		switch kind {
		case KindStubs:
			renderStubs(&buf, stubs, handler)
			decl = wrapArray(name, handler, buf.Bytes())
		case KindLookup:
			renderLookup(&buf, lookup)
			decl = wrapArray(name, "string", buf.Bytes())
		case KindLengths:
			renderLengths(&buf, buildLengthTable(isa.Unprefixed), name)
			decl = buf.Bytes()
		case KindCycles:
			renderCycles(&buf, buildCycleTable(t), name)
			decl = buf.Bytes()
		default:
			return nil, xerrors.Errorf("unknown artifact kind %q", kind)
		}

		body := buf.Bytes()
		if asGo {
			src, err := goSource(pkg, decl)
			if err != nil {
				return nil, xerrors.Errorf("%s: %w", kind, err)
			}
			body = src
		}

		ret = append(ret, Artifact{
			Kind:      kind,
			Namespace: artNS,
			Name:      artifactName(kind, artNS),
			Body:      body,
		})
	}
	return ret, nil
}

func writeArtifacts(dir string, arts []Artifact, asGo bool) error {
	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return err
	}

	for _, a := range arts {
		path := filepath.Join(dir, a.Filename(asGo))
		if err := os.WriteFile(path, a.Body, 0644); err != nil {
			return xerrors.Errorf("writing %s: %w", a.Kind, err)
		}
		logrus.WithFields(logrus.Fields{
			"artifact":  a.Kind,
			"namespace": a.Namespace,
			"path":      path,
		}).Info("Wrote artifact")
	}
	return nil
}

func run(cfg config) error {
	ns, err := selectNamespace(cfg.Namespace)
	if err != nil {
		return err
	}
	kinds, err := selectArtifacts(cfg.Only)
	if err != nil {
		return err
	}

	isa, err := loadISAMeta(cfg.In, cfg.Lenient)
	if err != nil {
		return err
	}
	if cfg.Dump {
		spew.Fdump(os.Stderr, isa)
	}

	arts, err := generateArtifacts(isa, ns, kinds, cfg.Handler, cfg.Package)
	if err != nil {
		return err
	}
	return writeArtifacts(cfg.Out, arts, cfg.Package != "")
}
