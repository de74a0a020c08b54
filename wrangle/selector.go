package main

import (
	"strings"

	"github.com/beevik/prefixtree/v2"
	"golang.org/x/xerrors"
)

type ArtifactKind string

const (
	KindStubs   ArtifactKind = "stubs"
	KindLookup  ArtifactKind = "lookup"
	KindLengths ArtifactKind = "lengths"
	KindCycles  ArtifactKind = "cycles"
)

// ArtifactKinds is the order artifacts are generated and written in.
var ArtifactKinds = []ArtifactKind{KindStubs, KindLookup, KindLengths, KindCycles}

var (
	namespaceTree = prefixtree.New[Namespace]()
	artifactTree  = prefixtree.New[ArtifactKind]()
)

func init() {
	for _, ns := range Namespaces {
		namespaceTree.Add(string(ns), ns)
	}
	namespaceTree.Add("prefixed", CBPrefixed)

	for _, k := range ArtifactKinds {
		artifactTree.Add(string(k), k)
	}
}

// selectNamespace resolves a namespace given by any unambiguous prefix of
// its name, so "u" and "cb" are both accepted.
func selectNamespace(s string) (Namespace, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return "", xerrors.New("no namespace given")
	}
	ns, err := namespaceTree.FindValue(key)
	if err != nil {
		return "", xerrors.Errorf("namespace %q: %w", s, err)
	}
	return ns, nil
}

// selectArtifacts resolves a comma-separated list of artifact kinds. An
// empty list or "all" selects everything. The result is always in
// ArtifactKinds order with no repeats.
func selectArtifacts(s string) ([]ArtifactKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return ArtifactKinds, nil
	}

	want := make(map[ArtifactKind]bool)
	for _, raw := range strings.Split(s, ",") {
		key := strings.TrimSpace(raw)
		if key == "" {
			continue
		}
		k, err := artifactTree.FindValue(key)
		if err != nil {
			return nil, xerrors.Errorf("artifact %q: %w", raw, err)
		}
		want[k] = true
	}

	var ret []ArtifactKind
	for _, k := range ArtifactKinds {
		if want[k] {
			ret = append(ret, k)
		}
	}
	if len(ret) == 0 {
		return nil, xerrors.Errorf("no artifacts selected by %q", s)
	}
	return ret, nil
}
