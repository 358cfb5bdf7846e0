package execute

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoRunnerCapturesStdout(t *testing.T) {
	t.Parallel()

	r, err := NewGoRunner()
	if err != nil {
		t.Fatalf("NewGoRunner() error: %v", err)
	}

	out, err := r.Run(context.Background(), "import \"fmt\"")
	if err != nil {
		t.Fatalf("Run(import) error: %v", err)
	}
	if out != "" {
		t.Errorf("import produced output %q, want empty", out)
	}

	out, err = r.Run(context.Background(), `fmt.Println("hello")`)
	if err != nil {
		t.Fatalf("Run(Println) error: %v", err)
	}
	if out != "hello\n" {
		t.Errorf("Run(Println) output = %q, want %q", out, "hello\n")
	}
}

func TestGoRunnerPersistsState(t *testing.T) {
	t.Parallel()

	r, err := NewGoRunner()
	if err != nil {
		t.Fatalf("NewGoRunner() error: %v", err)
	}

	if _, err := r.Run(context.Background(), "x := 40"); err != nil {
		t.Fatalf("Run(x := 40) error: %v", err)
	}

	out, err := r.Run(context.Background(), "x + 2")
	if err != nil {
		t.Fatalf("Run(x + 2) error: %v", err)
	}
	if out != "42\n" {
		t.Errorf("Run(x + 2) output = %q, want %q", out, "42\n")
	}
}

func TestGoRunnerExpressionValue(t *testing.T) {
	t.Parallel()

	r, err := NewGoRunner()
	if err != nil {
		t.Fatalf("NewGoRunner() error: %v", err)
	}

	out, err := r.Run(context.Background(), "1+1")
	if err != nil {
		t.Fatalf("Run(1+1) error: %v", err)
	}
	if out != "2\n" {
		t.Errorf("Run(1+1) output = %q, want %q", out, "2\n")
	}
}

func TestGoRunnerStatementsProduceNoValue(t *testing.T) {
	t.Parallel()

	r, err := NewGoRunner()
	if err != nil {
		t.Fatalf("NewGoRunner() error: %v", err)
	}

	out, err := r.Run(context.Background(), "y := 7")
	if err != nil {
		t.Fatalf("Run(y := 7) error: %v", err)
	}
	if out != "" {
		t.Errorf("assignment output = %q, want empty", out)
	}
}

func TestGoRunnerDeclarationThenStatements(t *testing.T) {
	t.Parallel()

	r, err := NewGoRunner()
	if err != nil {
		t.Fatalf("NewGoRunner() error: %v", err)
	}
	if _, err := r.Run(context.Background(), `import "fmt"`); err != nil {
		t.Fatalf("Run(import) error: %v", err)
	}

	code := "var last int\nfor i := 0; i < 3; i++ {\n\tlast = i\n}\nfmt.Println(last)\n"
	out, err := r.Run(context.Background(), code)
	if err != nil {
		t.Fatalf("Run(var+for) error: %v", err)
	}
	if out != "2\n" {
		t.Errorf("Run(var+for) output = %q, want %q", out, "2\n")
	}
}

func TestGoRunnerStatementsThenDeclaration(t *testing.T) {
	t.Parallel()

	r, err := NewGoRunner()
	if err != nil {
		t.Fatalf("NewGoRunner() error: %v", err)
	}
	if _, err := r.Run(context.Background(), `import "fmt"`); err != nil {
		t.Fatalf("Run(import) error: %v", err)
	}

	code := "n := 3\nfunc double(x int) int { return 2 * x }\n"
	if _, err := r.Run(context.Background(), code); err != nil {
		t.Fatalf("Run(stmt+func) error: %v", err)
	}

	out, err := r.Run(context.Background(), "fmt.Println(double(n))")
	if err != nil {
		t.Fatalf("Run(call) error: %v", err)
	}
	if out != "6\n" {
		t.Errorf("output = %q, want %q", out, "6\n")
	}
}

func TestSplitEvalUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want []string
	}{
		{
			name: "statements only stay whole",
			code: "x := 1\nfor i := 0; i < 3; i++ {\n\tx += i\n}\n",
			want: []string{"x := 1\nfor i := 0; i < 3; i++ {\n\tx += i\n}\n"},
		},
		{
			name: "declaration then statement",
			code: "var last int\nfor i := 0; i < 3; i++ {\n\tlast = i\n}\n",
			want: []string{"var last int", "for i := 0; i < 3; i++ {\n\tlast = i\n}\n"},
		},
		{
			name: "import group then statement",
			code: "import (\n\t\"fmt\"\n)\nfmt.Println(1)\n",
			want: []string{"import (\n\t\"fmt\"\n)", "fmt.Println(1)\n"},
		},
		{
			name: "function declaration alone",
			code: "func f() {\n\tprintln(1)\n}\n",
			want: []string{"func f() {\n\tprintln(1)\n}\n"},
		},
		{
			name: "statement then declaration",
			code: "x := 1\nvar y int\n",
			want: []string{"x := 1", "var y int\n"},
		},
		{
			name: "braces in strings ignored",
			code: "s := \"{\"\nprintln(s)\n",
			want: []string{"s := \"{\"\nprintln(s)\n"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := splitEvalUnits(tt.code)
			if len(got) != len(tt.want) {
				t.Fatalf("splitEvalUnits(%q) = %q, want %q", tt.code, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("unit %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGoRunnerEvalError(t *testing.T) {
	t.Parallel()

	r, err := NewGoRunner()
	if err != nil {
		t.Fatalf("NewGoRunner() error: %v", err)
	}

	_, err = r.Run(context.Background(), "undefinedIdentifier")
	if err == nil {
		t.Fatal("Run(undefined) expected error, got nil")
	}
	if !errors.Is(err, ErrEval) {
		t.Errorf("error = %v, want ErrEval", err)
	}
	if !strings.Contains(err.Error(), "undefinedIdentifier") {
		t.Errorf("error %q does not name the offending identifier", err)
	}
}

func TestEndsWithExpression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want bool
	}{
		{"binary expression", "1+1", true},
		{"trailing expression after statement", "x := 1\nx * 2", true},
		{"assignment", "x := 1", false},
		{"closing brace", "for i := 0; i < 3; i++ {\n}", false},
		{"empty", "", false},
		{"call expression", `doSomething()`, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := endsWithExpression(tt.code); got != tt.want {
				t.Errorf("endsWithExpression(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}
