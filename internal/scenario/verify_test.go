package scenario

import (
	"strings"
	"testing"
)

func validBundle(t *testing.T) *Bundle {
	t.Helper()
	p := testParams()
	p.Agents = 30
	b, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return b
}

func TestVerifyAcceptsGeneratedBundle(t *testing.T) {
	if err := Verify(validBundle(t)); err != nil {
		t.Fatalf("Verify rejected a generated bundle: %v", err)
	}
}

func TestVerifyCatchesCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(*Bundle)
		want    string
	}{
		{
			name: "dangling prs belief",
			corrupt: func(b *Bundle) {
				b.PRS[0].BeliefUUID = "00000000-0000-0000-0000-000000000000"
			},
			want: "excluded belief",
		},
		{
			name: "prs value out of range",
			corrupt: func(b *Bundle) {
				b.PRS[0].Value = 1.5
			},
			want: "out of [-1,1]",
		},
		{
			name: "perception of unknown behaviour",
			corrupt: func(b *Bundle) {
				b.Beliefs[0].Perceptions["bogus"] = 0.1
			},
			want: "unknown behaviour",
		},
		{
			name: "relationship to excluded belief",
			corrupt: func(b *Bundle) {
				b.Beliefs[0].Relationships["bogus"] = 0.1
			},
			want: "excluded belief",
		},
		{
			name: "zero delta",
			corrupt: func(b *Bundle) {
				for id := range b.Agents[0].Deltas {
					b.Agents[0].Deltas[id] = 0
					break
				}
			},
			want: "not positive",
		},
		{
			name: "missing initial activations",
			corrupt: func(b *Bundle) {
				delete(b.Agents[0].Activations, 0)
			},
			want: "no initial activations",
		},
		{
			name: "activation out of range",
			corrupt: func(b *Bundle) {
				for id := range b.Agents[0].Activations[0] {
					b.Agents[0].Activations[0][id] = -2
					break
				}
			},
			want: "out of [-1,1]",
		},
		{
			name: "missing initial action",
			corrupt: func(b *Bundle) {
				delete(b.Agents[0].Actions, 0)
			},
			want: "no initial action",
		},
		{
			name: "action is not a behaviour",
			corrupt: func(b *Bundle) {
				b.Agents[0].Actions[0] = b.Beliefs[0].UUID
			},
			want: "unknown behaviour",
		},
		{
			name: "friend outside population",
			corrupt: func(b *Bundle) {
				b.Agents[0].Friends["bogus"] = 0.5
			},
			want: "unknown agent",
		},
		{
			name: "friend weight out of range",
			corrupt: func(b *Bundle) {
				b.Agents[1].Friends[b.Agents[2].UUID] = 1.5
			},
			want: "out of [0,1]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBundle(t)
			tt.corrupt(b)
			err := Verify(b)
			if err == nil {
				t.Fatal("Verify accepted a corrupted bundle")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
