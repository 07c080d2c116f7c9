package content

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"resumec/common"
	"resumec/config"
	"resumec/state"
)

const testResume = `
profile:
  name: 张伟
  title: 后端工程师
  phone: "13800138000"
  summary: 十年后端开发经验
education:
  - school: 清华大学
    degree: 本科
    start_date: 2015-09
    end_date: 2019-06
experience:
  - company: 某科技公司
    position: 高级工程师
    start_date: 2019-07
    end_date: 至今
    description: 负责<b>核心交易服务</b>的设计与实现
`

func setupTestEnv(t *testing.T) context.Context {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx
}

func testEnvLogger(t *testing.T, ctx context.Context) *zap.Logger {
	t.Helper()
	return state.EnvFromContext(ctx).Log
}

func TestPrepare(t *testing.T) {
	ctx := setupTestEnv(t)

	c, err := Prepare(ctx, strings.NewReader(testResume), "test.yaml", common.OutputFmtHtml, testEnvLogger(t, ctx))
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	defer os.RemoveAll(c.WorkDir)

	if c.Doc.Profile.Name != "张伟" {
		t.Errorf("name = %q", c.Doc.Profile.Name)
	}
	if c.OutputFormat != common.OutputFmtHtml {
		t.Errorf("format = %v", c.OutputFormat)
	}
	if len(c.Seq) == 0 {
		t.Fatal("empty block sequence")
	}
	if len(c.Pages) == 0 {
		t.Fatal("no pages")
	}
	if len(c.Layout.Heights) != len(c.Seq) {
		t.Errorf("heights = %d, blocks = %d", len(c.Layout.Heights), len(c.Seq))
	}
	if c.Style.FontName == "" {
		t.Error("style not resolved")
	}
	if c.Avatar != nil {
		t.Error("avatar loaded for a document without one")
	}
	if c.Measurer == nil {
		t.Error("measurer not retained")
	}
}

func TestPrepare_InvalidDocument(t *testing.T) {
	ctx := setupTestEnv(t)

	_, err := Prepare(ctx, strings.NewReader("profile: [broken"), "bad.yaml", common.OutputFmtHtml, testEnvLogger(t, ctx))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "unable to parse resume") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestPrepare_CancelledContext(t *testing.T) {
	ctx := setupTestEnv(t)
	ctx, cancel := context.WithCancel(ctx)
	cancel()

	if _, err := Prepare(ctx, strings.NewReader(testResume), "test.yaml", common.OutputFmtHtml, zap.NewNop()); err == nil {
		t.Fatal("expected context error")
	}
}

func TestPrepare_WithAvatar(t *testing.T) {
	ctx := setupTestEnv(t)

	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 60, 80))
	for y := range 80 {
		for x := range 60 {
			img.Set(x, y, color.RGBA{100, 150, 200, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "avatar.png"), buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	src := testResume + "\n" // keep document structure, patch profile below
	src = strings.Replace(src, "  phone: \"13800138000\"",
		"  phone: \"13800138000\"\n  avatar: avatar.png\n  show_avatar: true", 1)

	c, err := Prepare(ctx, strings.NewReader(src), filepath.Join(dir, "resume.yaml"), common.OutputFmtDocx, testEnvLogger(t, ctx))
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	defer os.RemoveAll(c.WorkDir)

	if c.Avatar == nil {
		t.Fatal("avatar not loaded")
	}
	if c.Avatar.Width != 60 || c.Avatar.Height != 80 {
		t.Errorf("avatar dims = %dx%d, want 60x80", c.Avatar.Width, c.Avatar.Height)
	}
}

func TestPrepare_MissingAvatarDoesNotFail(t *testing.T) {
	ctx := setupTestEnv(t)

	src := strings.Replace(testResume, "  phone: \"13800138000\"",
		"  phone: \"13800138000\"\n  avatar: no-such-file.png\n  show_avatar: true", 1)

	c, err := Prepare(ctx, strings.NewReader(src), "resume.yaml", common.OutputFmtHtml, testEnvLogger(t, ctx))
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	defer os.RemoveAll(c.WorkDir)

	if c.Avatar != nil {
		t.Error("broken avatar must be dropped, not loaded")
	}
}

func TestPrepare_DebugReport(t *testing.T) {
	ctx := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	rc := config.ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}
	rpt, err := rc.Prepare()
	if err != nil {
		t.Fatalf("prepare reporter: %v", err)
	}
	env.Rpt = rpt
	defer rpt.Close()

	c, err := Prepare(ctx, strings.NewReader(testResume), "test.yaml", common.OutputFmtHtml, testEnvLogger(t, ctx))
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	defer os.RemoveAll(c.WorkDir)

	// normalized document and prepared layout saved next to each other
	if _, err := os.Stat(filepath.Join(c.WorkDir, "test.yaml")); err != nil {
		t.Errorf("normalized document not saved: %v", err)
	}
	if _, err := os.Stat(filepath.Join(c.WorkDir, "test.yaml_prepared")); err != nil {
		t.Errorf("prepared layout not saved: %v", err)
	}
}

func TestContent_String(t *testing.T) {
	ctx := setupTestEnv(t)

	c, err := Prepare(ctx, strings.NewReader(testResume), "test.yaml", common.OutputFmtHtml, testEnvLogger(t, ctx))
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	defer os.RemoveAll(c.WorkDir)

	s := c.String()
	for _, want := range []string{"Source: test.yaml", "张伟", "Page[0]"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q", want)
		}
	}

	var nilContent *Content
	if nilContent.String() != "<nil Content>" {
		t.Error("nil String() mismatch")
	}
}
