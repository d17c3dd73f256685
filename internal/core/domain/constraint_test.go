package domain_test

import (
	"testing"

	"github.com/Daisey666/envfile/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCondaSpec(t *testing.T) {
	tests := []struct {
		name        string
		spec        string
		wantName    string
		wantOp      domain.ConstraintOp
		wantVersion string
		wantBuild   string
		wantErr     error
	}{
		{
			name:     "bare name is unconstrained",
			spec:     "spacy",
			wantName: "spacy",
			wantOp:   domain.OpAny,
		},
		{
			name:        "exact pin",
			spec:        "python==3.7.4",
			wantName:    "python",
			wantOp:      domain.OpExact,
			wantVersion: "3.7.4",
		},
		{
			name:        "lower bound",
			spec:        "scikit-learn>=0.22.1",
			wantName:    "scikit-learn",
			wantOp:      domain.OpGreaterEqual,
			wantVersion: "0.22.1",
		},
		{
			name:        "fuzzy match",
			spec:        "python=3.7",
			wantName:    "python",
			wantOp:      domain.OpPrefix,
			wantVersion: "3.7",
		},
		{
			name:        "fuzzy match with wildcard",
			spec:        "numpy=1.18.*",
			wantName:    "numpy",
			wantOp:      domain.OpPrefix,
			wantVersion: "1.18.*",
		},
		{
			name:        "build string",
			spec:        "numpy=1.18=py37_0",
			wantName:    "numpy",
			wantOp:      domain.OpPrefix,
			wantVersion: "1.18",
			wantBuild:   "py37_0",
		},
		{
			name:        "upper bound",
			spec:        "tensorflow<2.4",
			wantName:    "tensorflow",
			wantOp:      domain.OpLess,
			wantVersion: "2.4",
		},
		{
			name:        "not equal",
			spec:        "mkl!=2020.0",
			wantName:    "mkl",
			wantOp:      domain.OpNotEqual,
			wantVersion: "2020.0",
		},
		{
			name:    "empty spec",
			spec:    "   ",
			wantErr: domain.ErrEmptyDependencyName,
		},
		{
			name:    "missing version after operator",
			spec:    "numpy>=",
			wantErr: domain.ErrInvalidConstraint,
		},
		{
			name:    "invalid name",
			spec:    "-numpy==1.0",
			wantErr: domain.ErrInvalidDependencyName,
		},
		{
			name:    "invalid version",
			spec:    "numpy==abc",
			wantErr: domain.ErrInvalidConstraint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dep, err := domain.ParseCondaSpec(tt.spec)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, dep.Name)
			assert.Equal(t, tt.wantBuild, dep.Build)

			if tt.wantOp == domain.OpAny {
				assert.True(t, dep.Unconstrained())
				return
			}
			require.Len(t, dep.Constraints, 1)
			assert.Equal(t, tt.wantOp, dep.Constraints[0].Op)
			assert.Equal(t, tt.wantVersion, dep.Constraints[0].Version)
		})
	}
}

func TestParseCondaSpec_Range(t *testing.T) {
	dep, err := domain.ParseCondaSpec("numpy>=1.18,<1.20")
	require.NoError(t, err)

	assert.Equal(t, "numpy", dep.Name)
	assert.Empty(t, dep.Build)
	require.Len(t, dep.Constraints, 2)
	assert.Equal(t, domain.OpGreaterEqual, dep.Constraints[0].Op)
	assert.Equal(t, "1.18", dep.Constraints[0].Version)
	assert.Equal(t, domain.OpLess, dep.Constraints[1].Op)
	assert.Equal(t, "1.20", dep.Constraints[1].Version)
	assert.Equal(t, "numpy>=1.18,<1.20", dep.Spec())
}

func TestParseCondaSpec_Range_TrailingComma(t *testing.T) {
	_, err := domain.ParseCondaSpec("numpy>=1.18,")
	assert.ErrorIs(t, err, domain.ErrInvalidConstraint)
}

func TestParsePipSpec(t *testing.T) {
	tests := []struct {
		name            string
		spec            string
		wantName        string
		wantExtras      []string
		wantConstraints []domain.Constraint
		wantErr         error
	}{
		{
			name:            "exact pin",
			spec:            "jax==0.1.75",
			wantName:        "jax",
			wantConstraints: []domain.Constraint{{Op: domain.OpExact, Version: "0.1.75"}},
		},
		{
			name:     "bare name is unconstrained",
			spec:     "spacy",
			wantName: "spacy",
		},
		{
			name:     "version range",
			spec:     "torch>=1.4,<2.0",
			wantName: "torch",
			wantConstraints: []domain.Constraint{
				{Op: domain.OpGreaterEqual, Version: "1.4"},
				{Op: domain.OpLess, Version: "2.0"},
			},
		},
		{
			name:            "compatible release",
			spec:            "pandas~=1.0.3",
			wantName:        "pandas",
			wantConstraints: []domain.Constraint{{Op: domain.OpCompatible, Version: "1.0.3"}},
		},
		{
			name:       "extras",
			spec:       "spacy[lookups,transformers]",
			wantName:   "spacy",
			wantExtras: []string{"lookups", "transformers"},
		},
		{
			name:            "extras with constraint",
			spec:            "dm-haiku[jax]==0.0.1",
			wantName:        "dm-haiku",
			wantExtras:      []string{"jax"},
			wantConstraints: []domain.Constraint{{Op: domain.OpExact, Version: "0.0.1"}},
		},
		{
			name:            "local version suffix",
			spec:            "jaxlib==0.1.52+cuda101",
			wantName:        "jaxlib",
			wantConstraints: []domain.Constraint{{Op: domain.OpExact, Version: "0.1.52+cuda101"}},
		},
		{
			name:    "empty spec",
			spec:    "",
			wantErr: domain.ErrEmptyDependencyName,
		},
		{
			name:    "unterminated extras",
			spec:    "spacy[lookups",
			wantErr: domain.ErrInvalidDependencyName,
		},
		{
			name:    "dangling comma constraint",
			spec:    "torch>=1.4,",
			wantErr: domain.ErrInvalidConstraint,
		},
		{
			name:    "trailing separator in name",
			spec:    "numpy-==1.0",
			wantErr: domain.ErrInvalidDependencyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dep, err := domain.ParsePipSpec(tt.spec)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, dep.Name)
			assert.Equal(t, tt.wantExtras, dep.Extras)
			assert.Equal(t, tt.wantConstraints, dep.Constraints)
		})
	}
}

func TestDependency_Spec_RoundTrip(t *testing.T) {
	condaSpecs := []string{"spacy", "python=3.7", "scikit-learn>=0.22.1", "numpy=1.18=py37_0"}
	for _, spec := range condaSpecs {
		dep, err := domain.ParseCondaSpec(spec)
		require.NoError(t, err)
		assert.Equal(t, spec, dep.Spec())
	}

	pipSpecs := []string{"jax==0.1.75", "torch>=1.4,<2.0", "spacy[lookups]", "pandas~=1.0.3"}
	for _, spec := range pipSpecs {
		dep, err := domain.ParsePipSpec(spec)
		require.NoError(t, err)
		assert.Equal(t, spec, dep.Spec())
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "scikit-learn", domain.NormalizeName("Scikit_Learn", domain.GroupPip))
	assert.Equal(t, "dm-haiku", domain.NormalizeName("dm.haiku", domain.GroupPip))
	assert.Equal(t, "scikit_learn", domain.NormalizeName("Scikit_Learn", domain.GroupConda))
}
