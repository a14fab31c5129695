// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reconcile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/lexcorpus/pkg/types"
)

func defaultReconciler() *Reconciler {
	return New(types.DefaultReconcileConfig())
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single unterminated", "abc", []string{"abc"}},
		{"terminated", "a\nb\n", []string{"a\n", "b\n"}},
		{"last unterminated", "a\nb", []string{"a\n", "b"}},
		{"blank lines kept", "a\n\n\nb\n", []string{"a\n", "\n", "\n", "b\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.in))
		})
	}
}

func TestLineIndex_LastWriteWins(t *testing.T) {
	idx := NewLineIndex([]string{"A\n", "B\n", "A\n"})
	i, ok := idx.Lookup("A\n")
	require.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = idx.Lookup("C\n")
	assert.False(t, ok)
}

func TestRuneSlicing(t *testing.T) {
	assert.Equal(t, "déc", headRunes("décision", 3))
	assert.Equal(t, "ision", tailRunes("décision", 3))
	assert.Equal(t, "ab", headRunes("ab", 20))
	assert.Equal(t, "", tailRunes("ab", 3))
	assert.Equal(t, "", headRunes("abc", 0))
	assert.Equal(t, "abc", tailRunes("abc", 0))
}

func TestReconcile_ExactMatchPriority(t *testing.T) {
	ref := "Theprocessingofpersonaldatamustbelawful\n"
	src := Sources{
		Reference: []string{ref},
		DonorStripped: []string{
			"Theprocessingofpersonaldataisdifferent\n", // prefix candidate
			ref,
		},
		FallbackReference: []string{"The processing of personal data must be lawful\n"},
		DonorOriginal: []string{
			"The processing of personal data is different\n",
			"The processing of personal data must be lawful\n",
		},
	}

	out, stats, err := defaultReconciler().Reconcile(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"The processing of personal data must be lawful\n"}, out)
	assert.Equal(t, types.ReconcileStats{Exact: 1}, stats)
}

func TestReconcile_SuffixSubstitutionFormat(t *testing.T) {
	src := Sources{
		Reference:         []string{"(a)lawfulnessoftheprocessing\n"},
		DonorStripped:     []string{"Article5\n", "lawfulnessoftheprocessing\n"},
		FallbackReference: []string{"(a) lawfulness of the proces sing\n"},
		DonorOriginal:     []string{"Article 5\n", "lawfulness of the processing\n"},
	}

	out, stats, err := defaultReconciler().Reconcile(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"(a)" + "   " + "lawfulness of the processing\n"}, out)
	assert.Equal(t, 1, stats.Suffix)
}

func TestReconcile_SuffixBeatsEarlierPrefix(t *testing.T) {
	src := Sources{
		Reference: []string{"(a)lawfulnessoftheprocessingisrequired\n"},
		DonorStripped: []string{
			"(a)lawfulnessoftheprinciples\n", // shares the first 20 characters
			"lawfulnessoftheprocessingisrequired\n",
		},
		FallbackReference: []string{"fallback\n"},
		DonorOriginal: []string{
			"(a) lawfulness of the principles\n",
			"lawfulness of the processing is required\n",
		},
	}

	out, stats, err := defaultReconciler().Reconcile(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"(a)   lawfulness of the processing is required\n"}, out)
	assert.Equal(t, types.ReconcileStats{Suffix: 1}, stats)
}

func TestReconcile_MatchAtFirstDonorLine(t *testing.T) {
	// A suffix match at index 0 counts as found and ends the scan at index 1.
	r := defaultReconciler()
	donor := []string{
		"lawfulnessoftheprocessingisrequired\n",
		"(a)lawfulnessoftheprinciples\n",
		"lawfulnessoftheprocessingisrequired\n",
	}
	heads := make([]string, len(donor))
	for j, d := range donor {
		heads[j] = headRunes(d, r.prefixLength)
	}

	suffix, prefix := r.scan("(a)lawfulnessoftheprocessingisrequired\n", donor, heads)
	assert.Equal(t, 0, suffix)
	assert.Equal(t, 1, prefix)
}

func TestReconcile_PrefixMatch(t *testing.T) {
	src := Sources{
		Reference: []string{"Controllersshallimplementappropriatemeasures\n"},
		DonorStripped: []string{
			"Article24\n",
			"Controllersshallimplementappropriatetechnical\n",
			"Controllersshallimplementsomethingelse\n",
		},
		FallbackReference: []string{"Controllers shall implement appropriate measures\n"},
		DonorOriginal: []string{
			"Article 24\n",
			"Controllers shall implement appropriate technical\n",
			"Controllers shall implement something else\n",
		},
	}

	out, stats, err := defaultReconciler().Reconcile(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"Controllers shall implement appropriate technical\n"}, out)
	assert.Equal(t, types.ReconcileStats{Prefix: 1}, stats)
}

func TestReconcile_Fallback(t *testing.T) {
	src := Sources{
		Reference:         []string{"Nothingmatcheshere\n"},
		DonorStripped:     []string{"Somethingelseentirely\n"},
		FallbackReference: []string{"Nothing matches here\n"},
		DonorOriginal:     []string{"Something else entirely\n"},
	}

	out, stats, err := defaultReconciler().Reconcile(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nothing matches here\n"}, out)
	assert.Equal(t, types.ReconcileStats{Fallback: 1}, stats)
}

func TestReconcile_LineCountInvariant(t *testing.T) {
	donor := []string{"Article1\n", "Subject-matterandobjectives\n"}
	donorOrig := []string{"Article 1\n", "Subject-matter and objectives\n"}

	tests := []struct {
		name      string
		reference []string
		fallback  []string
		want      []string
	}{
		{
			name:      "fallback longer",
			reference: []string{"Article1\n"},
			fallback:  []string{"Article 1\n", "tail one\n", "tail two\n"},
			want:      []string{"Article 1\n", "tail one\n", "tail two\n"},
		},
		{
			name:      "reference longer",
			reference: []string{"Article1\n", "Subject-matterandobjectives\n", "unmatched\n"},
			fallback:  []string{"Article 1\n"},
			want:      []string{"Article 1\n", "Subject-matter and objectives\n", ""},
		},
		{
			name:      "both empty",
			reference: nil,
			fallback:  nil,
			want:      []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, stats, err := defaultReconciler().Reconcile(Sources{
				Reference:         tt.reference,
				DonorStripped:     donor,
				FallbackReference: tt.fallback,
				DonorOriginal:     donorOrig,
			})
			require.NoError(t, err)
			assert.Len(t, out, max(len(tt.reference), len(tt.fallback)))
			assert.Equal(t, tt.want, out)
			assert.Equal(t, len(out), stats.Total())
		})
	}
}

func TestReconcile_DuplicateDonorLineUsesLast(t *testing.T) {
	out, _, err := defaultReconciler().Reconcile(Sources{
		Reference:         []string{"Article1\n"},
		DonorStripped:     []string{"Article1\n", "Article1\n"},
		FallbackReference: []string{"Article 1\n"},
		DonorOriginal:     []string{"first\n", "second\n"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"second\n"}, out)
}

func TestReconcile_ShortReferenceMatchesEmptyDonor(t *testing.T) {
	// Removing three characters from a three character line leaves "", which
	// matches an empty donor line.
	out, stats, err := defaultReconciler().Reconcile(Sources{
		Reference:         []string{"ab\n"},
		DonorStripped:     []string{"x\n", ""},
		FallbackReference: []string{"a b\n"},
		DonorOriginal:     []string{"X\n", "empty"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ab\n   empty\n"}, out)
	assert.Equal(t, 1, stats.Suffix)
}

func TestReconcile_CustomThresholds(t *testing.T) {
	r := New(types.ReconcileConfig{SuffixSkip: 2, PrefixLength: 5, SuffixSeparator: " "})
	out, stats, err := r.Reconcile(Sources{
		Reference:         []string{"1.Scope\n", "Materialscopeofthis\n"},
		DonorStripped:     []string{"Scope\n", "Materialscopeofapplication\n"},
		FallbackReference: []string{"1. Scope\n", "Material scope of this\n"},
		DonorOriginal:     []string{"Scope\n", "Material scope of application\n"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1. Scope\n", "Material scope of application\n"}, out)
	assert.Equal(t, types.ReconcileStats{Suffix: 1, Prefix: 1}, stats)
}

func TestNew_Defaults(t *testing.T) {
	r := New(types.ReconcileConfig{})
	assert.Equal(t, types.DefaultSuffixSkip, r.suffixSkip)
	assert.Equal(t, types.DefaultPrefixLength, r.prefixLength)
	assert.Equal(t, types.DefaultSuffixSeparator, r.separator)
}

func TestReconcile_DonorMismatch(t *testing.T) {
	_, _, err := defaultReconciler().Reconcile(Sources{
		Reference:     []string{"a\n"},
		DonorStripped: []string{"a\n", "b\n"},
		DonorOriginal: []string{"a\n"},
	})
	assert.ErrorIs(t, err, ErrDonorMismatch)
}

func writeLines(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "")), 0o644))
	return path
}

func TestReconcileFiles(t *testing.T) {
	dir := t.TempDir()
	paths := FilePaths{
		Reference: writeLines(t, dir, "ref.txt",
			"Article6\n", "(1)Processingshallbelawful\n", "Garbledlinewithnomatch\n"),
		DonorStripped: writeLines(t, dir, "donor_stripped.txt",
			"Article6\n", "Processingshallbelawful\n"),
		FallbackReference: writeLines(t, dir, "fallback.txt",
			"Article 6\n", "(1) Processing shall be lawful\n", "Garbled line with no match\n"),
		DonorOriginal: writeLines(t, dir, "donor.txt",
			"Article 6\n", "Processing shall be lawful\n"),
		Output: filepath.Join(dir, "out", "reconciled.txt"),
	}

	var log bytes.Buffer
	stats, err := defaultReconciler().ReconcileFiles(paths, &log)
	require.NoError(t, err)
	assert.Equal(t, types.ReconcileStats{Exact: 1, Suffix: 1, Fallback: 1}, stats)

	data, err := os.ReadFile(paths.Output)
	require.NoError(t, err)
	assert.Equal(t,
		"Article 6\n"+"(1)   Processing shall be lawful\n"+"Garbled line with no match\n",
		string(data))
	assert.Contains(t, log.String(), "reconciled 3 lines (exact 1, suffix 1, prefix 0, fallback 1)")
}

func TestReconcileFiles_UnterminatedDonorLine(t *testing.T) {
	// The last donor line has no line break and is substituted at the first
	// position. The heading after it must stay on its own line.
	dir := t.TempDir()
	paths := FilePaths{
		Reference: writeLines(t, dir, "ref.txt",
			"Processingofpersonaldatabythecontroller\n", "Article5\n", "Principles\n"),
		DonorStripped: writeLines(t, dir, "donor_stripped.txt",
			"Article5\n", "Principles\n", "Processingofpersonaldatabythecontrollershall"),
		FallbackReference: writeLines(t, dir, "fallback.txt",
			"Processing of personal data by the contr oller\n", "Article 5\n", "Principles\n"),
		DonorOriginal: writeLines(t, dir, "donor.txt",
			"Article 5\n", "Principles\n", "Processing of personal data by the controller shall"),
		Output: filepath.Join(dir, "reconciled.txt"),
	}

	stats, err := defaultReconciler().ReconcileFiles(paths, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, types.ReconcileStats{Exact: 2, Prefix: 1}, stats)

	data, err := os.ReadFile(paths.Output)
	require.NoError(t, err)
	lines := SplitLines(string(data))
	assert.Len(t, lines, stats.Total())
	assert.Equal(t, []string{
		"Processing of personal data by the controller shall\n",
		"Article 5\n",
		"Principles\n",
	}, lines)
}

func TestReconcile_UnterminatedLineAtEnd(t *testing.T) {
	// No break is added where neither reference nor fallback has one.
	out, _, err := defaultReconciler().Reconcile(Sources{
		Reference:         []string{"Article1\n", "Materialscope"},
		DonorStripped:     []string{"Article1\n", "Materialscope"},
		FallbackReference: []string{"Article 1\n", "Material scope"},
		DonorOriginal:     []string{"Article 1\n", "Material scope"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Article 1\n", "Material scope"}, out)
}

func TestReconcileFiles_MissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := defaultReconciler().ReconcileFiles(FilePaths{
		Reference: filepath.Join(dir, "absent.txt"),
		Output:    filepath.Join(dir, "out.txt"),
	}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestResolutionString(t *testing.T) {
	assert.Equal(t, "exact", ResolvedExact.String())
	assert.Equal(t, "suffix", ResolvedSuffix.String())
	assert.Equal(t, "prefix", ResolvedPrefix.String())
	assert.Equal(t, "fallback", ResolvedFallback.String())
}
