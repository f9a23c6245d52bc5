package cli

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/koagen/internal/scaffold"
)

const goodsDDL = "CREATE TABLE `shop_goods` (\n" +
	"  `id` int NOT NULL,\n" +
	"  `title` varchar(64),\n" +
	"  `delete_time` bigint\n" +
	");\n"

// runRoot executes the root command in a fresh working directory.
func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(prev) })

	cmd := RootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGenerate_FromStdin(t *testing.T) {
	outDir := t.TempDir()

	out, err := runRoot(t, goodsDDL, "--out", outDir)
	require.NoError(t, err)

	assert.Contains(t, out, "Created models/shopGoods.js")
	assert.Contains(t, out, "Created controllers/shop/goods.js")
	assert.Contains(t, out, "Created services/shop/goods.js")
	assert.Contains(t, out, "Generated 3 of 3 files.")

	assert.Contains(t, readFile(t, filepath.Join(outDir, "models", "shopGoods.js")), "class ShopGoods")
	assert.Contains(t, readFile(t, filepath.Join(outDir, "controllers", "shop", "goods.js")), "this.services['shop/goods']")
	service := readFile(t, filepath.Join(outDir, "services", "shop", "goods.js"))
	assert.Equal(t, 2, strings.Count(service, "hasOwnProperty('title')"))
	assert.NotContains(t, service, "hasOwnProperty('id')")
}

func TestGenerate_SubcommandFromFile(t *testing.T) {
	outDir := t.TempDir()
	file := filepath.Join(t.TempDir(), "goods.sql")
	require.NoError(t, os.WriteFile(file, []byte(goodsDDL), 0644))

	_, err := runRoot(t, "", "generate", "--file", file, "--out", outDir, "--ext", ".mjs")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "models", "shopGoods.mjs"))
	assert.FileExists(t, filepath.Join(outDir, "services", "shop", "goods.mjs"))
}

func TestGenerate_SecondRunSkips(t *testing.T) {
	outDir := t.TempDir()

	_, err := runRoot(t, goodsDDL, "--out", outDir)
	require.NoError(t, err)
	before := readFile(t, filepath.Join(outDir, "services", "shop", "goods.js"))

	out, err := runRoot(t, goodsDDL, "--out", outDir)
	require.NoError(t, err)

	assert.Contains(t, out, "Skipped services/shop/goods.js (already exists)")
	assert.Contains(t, out, "Nothing to do")
	assert.Equal(t, before, readFile(t, filepath.Join(outDir, "services", "shop", "goods.js")))
}

func TestGenerate_DryRun(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")

	out, err := runRoot(t, goodsDDL, "--out", outDir, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "(dry-run mode - no files written)")
	assert.Contains(t, out, "--- services/shop/goods.js ---")
	assert.NoDirExists(t, outDir)
}

func TestGenerate_InputErrorWritesNothing(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")

	_, err := runRoot(t, "CREATE TABLE `goods` (`id` int);", "--out", outDir)
	require.Error(t, err)
	assert.True(t, scaffold.IsInputError(err))
	assert.ErrorIs(t, err, scaffold.ErrMissingUnderscore)
	assert.NoDirExists(t, outDir)
}

func TestGenerate_FromSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dev.db")
	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE `mall_order_item` (`id` INTEGER PRIMARY KEY, `sku` TEXT)")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	outDir := t.TempDir()
	_, err = runRoot(t, "", "--sqlite", dbPath, "--table", "mall_order_item", "--out", outDir)
	require.NoError(t, err)

	controller := readFile(t, filepath.Join(outDir, "controllers", "mall", "orderItem.js"))
	assert.Contains(t, controller, "module.exports = class OrderItem")
	assert.FileExists(t, filepath.Join(outDir, "models", "mallOrderItem.js"))
}

func TestGenerate_SourceFlagConflicts(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"file and sqlite", []string{"--file", "a.sql", "--sqlite", "a.db", "--table", "x_y"}, "mutually exclusive"},
		{"table without sqlite", []string{"--table", "x_y"}, "--table requires --sqlite"},
		{"sqlite without table", []string{"--sqlite", "a.db"}, "--sqlite requires --table"},
		{"bad ext", []string{"--ext", "js"}, "must start with '.'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runRoot(t, goodsDDL, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
