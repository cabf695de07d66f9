package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/wippyai/plbin/assembly"
	"github.com/wippyai/plbin/attrs"
	"github.com/wippyai/plbin/export"
	"github.com/wippyai/plbin/instruction"
	"github.com/wippyai/plbin/ref"
)

func sampleAssembly() *assembly.Assembly {
	object := ref.Core("System.Object")

	class := &assembly.ClassDef{
		Parent: &object,
		Attr: attrs.TypeAttr{
			Vis:      attrs.VisibilityPublic,
			Specific: &attrs.ClassAttr{Flags: attrs.ClassSealed},
		},
		Name: "App.Main",
	}
	class.TypeVars.Set("@T", assembly.GenericBinding{
		ImplementedInterfaces: []ref.TypeRef{ref.Core("System.IDisposable")},
	})
	class.Methods.Set("Run()", assembly.Method{
		Name: "Run()",
		Attr: attrs.MethodAttr{Vis: attrs.VisibilityPublic, ImplFlags: attrs.MethodStatic, RegisterLen: 2},
		Instructions: []instruction.Instruction{
			&instruction.LoadU64{RegisterAddr: 1, Val: 0},
			&instruction.ReturnVal{RegisterAddr: 1},
		},
		RetType: ref.Core("System.Int64"),
	})

	point := assembly.NewStruct("App.Point")
	point.Attr.Vis = attrs.VisibilityInternal
	point.Fields.Set("X", assembly.Field{
		Name: "X",
		Attr: attrs.FieldAttr{Vis: attrs.VisibilityPublic, ImplFlags: attrs.FieldReadOnly},
		Type: ref.Core("System.Int64"),
	})

	a := &assembly.Assembly{Name: "App"}
	a.Add(class)
	a.Add(point)
	return a
}

// writeSample writes the sample assembly with the default "PL" header.
func writeSample(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := assembly.WriteFile(path, sampleAssembly(), assembly.WithMagic()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plb.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runPLB(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", writeConfig(t, "")}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults when implicit file is missing", func(t *testing.T) {
		cfg, err := loadConfig(filepath.Join(t.TempDir(), "plb.toml"), false)
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.File.Magic != "PL" || cfg.Export.Format != "cbor" || cfg.Log.Level != "warn" {
			t.Errorf("unexpected defaults %+v", cfg)
		}
	})

	t.Run("explicit file must exist", func(t *testing.T) {
		if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), true); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("overrides", func(t *testing.T) {
		path := writeConfig(t, `
[log]
level = "debug"

[file]
magic = ""

[export]
format = "msgpack"

[verify]
jobs = 0
`)
		cfg, err := loadConfig(path, true)
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.Log.Level != "debug" || cfg.File.Magic != "" || cfg.Export.Format != "msgpack" {
			t.Errorf("got %+v", cfg)
		}
		if cfg.Verify.Jobs != 1 {
			t.Errorf("Jobs = %d, want 1", cfg.Verify.Jobs)
		}
		if cfg.Dump.Color != "auto" {
			t.Errorf("Dump.Color = %q, want default", cfg.Dump.Color)
		}
	})

	t.Run("unknown keys", func(t *testing.T) {
		path := writeConfig(t, "[file]\nmagik = \"PL\"\n")
		_, err := loadConfig(path, true)
		if err == nil || !strings.Contains(err.Error(), "file.magik") {
			t.Fatalf("err = %v, want unknown key file.magik", err)
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		if _, err := loadConfig(writeConfig(t, "[log\n"), true); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestFileConfigOptions(t *testing.T) {
	tests := []struct {
		magic   string
		want    int
		wantErr bool
	}{
		{magic: "", want: 0},
		{magic: "PL", want: 1},
		{magic: "P", wantErr: true},
		{magic: "PLB", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.magic, func(t *testing.T) {
			opts, err := FileConfig{Magic: tt.magic}.options()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("options: %v", err)
			}
			if len(opts) != tt.want {
				t.Errorf("got %d options, want %d", len(opts), tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := newLogger("info"); err != nil {
		t.Errorf("info: %v", err)
	}
	if _, err := newLogger("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestDump(t *testing.T) {
	path := writeSample(t, t.TempDir(), "app.plb")

	out, err := runPLB(t, "dump", "--color", "off", path)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	for _, want := range []string{
		"assembly App\n",
		"  class [public sealed] App.Main : [!]System.Object\n",
		"    generic @T implements [!]System.IDisposable\n",
		"    method [public static] Run() () -> [!]System.Int64 registers=2\n",
		"      0000 load.u64 r1, 0\n",
		"      0001 ret r1\n",
		"  struct [internal] App.Point\n",
		"    field [public readonly] X [!]System.Int64\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("color codes in output with --color off")
	}
	if strings.Index(out, "App.Main") > strings.Index(out, "App.Point") {
		t.Error("types not printed in name order")
	}
}

func TestDumpBadColor(t *testing.T) {
	path := writeSample(t, t.TempDir(), "app.plb")
	if _, err := runPLB(t, "dump", "--color", "sometimes", path); err == nil {
		t.Fatal("expected error")
	}
}

func TestDumpWrongMagic(t *testing.T) {
	path := writeSample(t, t.TempDir(), "app.plb")
	if _, err := runPLB(t, "--magic", "XX", "dump", path); err == nil {
		t.Fatal("expected error for mismatched header")
	}
}

func TestStrings(t *testing.T) {
	path := writeSample(t, t.TempDir(), "app.plb")

	out, err := runPLB(t, "strings", path)
	if err != nil {
		t.Fatalf("strings: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if lines[0] != `    0  ""` {
		t.Errorf("first line = %q, want the empty string at 0", lines[0])
	}
	for _, want := range []string{`"App"`, `"App.Main"`, `"Run()"`, `"X"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s\n%s", want, out)
		}
	}
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	good := writeSample(t, dir, "good.plb")

	b, err := os.ReadFile(good)
	if err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.plb")
	if err := os.WriteFile(bad, b[:len(b)-3], 0o644); err != nil {
		t.Fatal(err)
	}
	trailing := filepath.Join(dir, "trailing.plb")
	if err := os.WriteFile(trailing, append(b, 0), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("all good", func(t *testing.T) {
		out, err := runPLB(t, "verify", "-j", "2", good)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if out != "ok   "+good+"\n" {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("failures are reported per file", func(t *testing.T) {
		out, err := runPLB(t, "verify", good, bad, trailing)
		if err == nil || err.Error() != "2 of 3 files failed verification" {
			t.Fatalf("err = %v", err)
		}
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %d lines:\n%s", len(lines), out)
		}
		if lines[0] != "ok   "+good {
			t.Errorf("line 0 = %q", lines[0])
		}
		for i, path := range []string{bad, trailing} {
			if !strings.HasPrefix(lines[i+1], "FAIL "+path+": ") {
				t.Errorf("line %d = %q", i+1, lines[i+1])
			}
		}
	})
}

func TestVerifyFilesMissing(t *testing.T) {
	results := verifyFiles(t.Context(), []string{filepath.Join(t.TempDir(), "nope.plb")}, 4, nil, zap.NewNop())
	if len(results) != 1 || results[0] == nil {
		t.Fatalf("results = %v", results)
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir, "app.plb")

	for _, format := range []export.Format{export.FormatCBOR, export.FormatMsgpack} {
		t.Run(string(format), func(t *testing.T) {
			output := filepath.Join(dir, "app."+string(format))
			if _, err := runPLB(t, "export", "--format", string(format), "-o", output, path); err != nil {
				t.Fatalf("export: %v", err)
			}
			b, err := os.ReadFile(output)
			if err != nil {
				t.Fatal(err)
			}
			doc, err := export.Unmarshal(b, format)
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if doc.Name != "App" || len(doc.Types) != 2 {
				t.Errorf("got %s with %d types", doc.Name, len(doc.Types))
			}
		})
	}

	t.Run("stdout", func(t *testing.T) {
		out, err := runPLB(t, "export", path)
		if err != nil {
			t.Fatalf("export: %v", err)
		}
		if _, err := export.Unmarshal([]byte(out), export.FormatCBOR); err != nil {
			t.Errorf("stdout is not CBOR: %v", err)
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		output := filepath.Join(dir, "app.db")
		if _, err := runPLB(t, "export", "--format", "sqlite", "-o", output, path); err != nil {
			t.Fatalf("export: %v", err)
		}
		if fi, err := os.Stat(output); err != nil || fi.Size() == 0 {
			t.Fatalf("database not written: %v", err)
		}
		if _, err := runPLB(t, "export", "--format", "sqlite", path); err == nil {
			t.Error("expected error without --output")
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := runPLB(t, "export", "--format", "xml", path); err == nil {
			t.Fatal("expected error")
		}
	})
}
