package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/phyten/brackx/internal/engine"
)

func TestCheckCmdは釣り合いの取れたファイルで0を返す(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.txt", "func main() { fmt.Println([]int{1, 2}) }\n")

	var buf bytes.Buffer
	code := checkCmd([]string{"-no-config", "-root", dir}, &buf)
	if code != exitBalanced {
		t.Fatalf("終了コード: %d", code)
	}
	if buf.String() != "Brackets are balanced\n" {
		t.Fatalf("出力: %q", buf.String())
	}
}

func TestCheckCmdは違反ファイルで1を返す(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.txt", ")\n")

	var buf bytes.Buffer
	code := checkCmd([]string{"-no-config", "-root", dir, "-path", path}, &buf)
	if code != exitBroken {
		t.Fatalf("終了コード: %d", code)
	}
	if buf.String() != "Extra closing bracket ')' at line 1, column 0\n" {
		t.Fatalf("出力: %q", buf.String())
	}
}

func TestCheckCmdは位置引数のファイルを受け付ける(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.txt", "{ [1, 2, (3+4] }\n")

	var buf bytes.Buffer
	code := checkCmd([]string{"-no-config", path}, &buf)
	if code != exitBroken {
		t.Fatalf("終了コード: %d", code)
	}
	want := "Mismatched brackets: '(' at line 1, column 9 and ']' at line 1, column 13\n"
	if buf.String() != want {
		t.Fatalf("出力: %q", buf.String())
	}
}

func TestCheckCmdは複数ファイルでファイル名を前置する(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "(\n")
	writeFile(t, dir, "b.txt", "ok\n")

	var buf bytes.Buffer
	code := checkCmd([]string{"-no-config", "-root", dir}, &buf)
	if code != exitBroken {
		t.Fatalf("終了コード: %d", code)
	}
	want := "a.txt: Unclosed brackets:\n  '(' at line 1, column 0\n"
	if buf.String() != want {
		t.Fatalf("出力: %q", buf.String())
	}
}

func TestCheckCmdはquietで成功メッセージを抑制する(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.txt", "()\n")

	var buf bytes.Buffer
	code := checkCmd([]string{"-no-config", "-root", dir, "-quiet"}, &buf)
	if code != exitBalanced {
		t.Fatalf("終了コード: %d", code)
	}
	if buf.String() != "" {
		t.Fatalf("出力: %q", buf.String())
	}
}

func TestCheckCmdはJSON出力に対応する(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.txt", "([)]\n")

	var buf bytes.Buffer
	code := checkCmd([]string{"-no-config", "-root", dir, "-output", "json"}, &buf)
	if code != exitBroken {
		t.Fatalf("終了コード: %d", code)
	}
	var res engine.Result
	if err := json.Unmarshal(buf.Bytes(), &res); err != nil {
		t.Fatalf("デコードに失敗しました: %v", err)
	}
	if res.Broken != 1 || len(res.Items) != 1 {
		t.Fatalf("集計が一致しません: %+v", res)
	}
	if res.Items[0].Open == nil || res.Items[0].Open.Char != "[" {
		t.Fatalf("開き括弧の情報が欠けています: %+v", res.Items[0])
	}
}

func TestCheckCmdはソート指定を適用する(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", ")\n")
	writeFile(t, dir, "b.txt", "(\n")

	var buf bytes.Buffer
	code := checkCmd([]string{"-no-config", "-root", dir, "-output", "tsv", "-fields", "file,status", "-sort", "-file"}, &buf)
	if code != exitBroken {
		t.Fatalf("終了コード: %d", code)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("行数: %q", buf.String())
	}
	if !strings.HasPrefix(lines[1], "b.txt\t") || !strings.HasPrefix(lines[2], "a.txt\t") {
		t.Fatalf("降順ソートが効いていません: %q", buf.String())
	}
}

func TestCheckCmdは不正なオプションで2を返す(t *testing.T) {
	dir := t.TempDir()
	for _, args := range [][]string{
		{"-no-config", "-root", dir, "-output", "bogus"},
		{"-no-config", "-root", dir, "-sort", "bogus"},
		{"-no-config", "-root", dir, "-fields", "bogus"},
		{"-no-config", "-root", dir, "-jobs", "999"},
		{"-no-config", "-path-regex", "[", "-root", dir},
	} {
		var buf bytes.Buffer
		if code := checkCmd(args, &buf); code != exitUsage {
			t.Fatalf("%v の終了コード: %d", args, code)
		}
	}
}

func TestCheckCmdは設定ファイルを読み込む(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep/a.txt", ")\n")
	writeFile(t, dir, "skip/b.txt", ")\n")
	cfgPath := writeFile(t, dir, ".brackx.yaml", "engine:\n  path_regex: [\"^keep/\"]\nui:\n  quiet: true\n")

	var buf bytes.Buffer
	code := checkCmd([]string{"-config", cfgPath, "-root", dir, "-output", "tsv", "-fields", "file"}, &buf)
	if code != exitBroken {
		t.Fatalf("終了コード: %d", code)
	}
	out := buf.String()
	if !strings.Contains(out, "keep/a.txt") || strings.Contains(out, "skip/b.txt") {
		t.Fatalf("設定の絞り込みが効いていません: %q", out)
	}
}

func TestCheckCmdはフラグが設定より優先される(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", ")\n")
	cfgPath := writeFile(t, dir, ".brackx.yaml", "engine:\n  output: json\n")

	var buf bytes.Buffer
	code := checkCmd([]string{"-config", cfgPath, "-root", dir, "-output", "text"}, &buf)
	if code != exitBroken {
		t.Fatalf("終了コード: %d", code)
	}
	if strings.HasPrefix(buf.String(), "{") {
		t.Fatalf("フラグが設定に負けています: %q", buf.String())
	}
}

func TestReportErrorsは標準エラーに概要を出力する(t *testing.T) {
	// reportErrors writes to os.Stderr; just verify the zero-error path
	// does nothing and the summary path does not panic.
	reportErrors(&engine.Result{})
	reportErrors(&engine.Result{
		ErrorCount: 2,
		Errors: []engine.ItemError{
			{File: "a.txt", Stage: "decode", Message: "binary file"},
			{File: "b.txt", Stage: "size", Message: "too large"},
		},
	})
}
