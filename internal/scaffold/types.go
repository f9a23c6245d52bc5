// Package scaffold derives names and fields from a CREATE TABLE statement and
// renders the koacrab model, controller and service files for it.
package scaffold

// NameParts is a table name split on its first underscore.
type NameParts struct {
	Folder   string // "shop" for shop_goods
	FileBase string // "goods" for shop_goods; may be empty
}

// NameVariants holds the case forms of an underscore-delimited identifier.
type NameVariants struct {
	Camel  string // userProfile
	Pascal string // UserProfile
}

// TableSpec contains everything derived from one CREATE TABLE statement.
type TableSpec struct {
	TableName string       // raw name: "shop_goods"
	Table     NameVariants // shopGoods / ShopGoods
	Parts     NameParts    // shop / goods
	File      NameVariants // goods / Goods
	Fields    []string     // every backtick token, in order, not deduplicated
}

// File kinds produced for a table.
const (
	KindModel      = "model"
	KindController = "controller"
	KindService    = "service"
)

// GeneratedFile is one rendered output file.
type GeneratedFile struct {
	Kind    string // model, controller or service
	Path    string // slash-separated, relative to the output root
	Content string
}

// GeneratorResult contains the files rendered for a table.
type GeneratorResult struct {
	Spec  *TableSpec
	Files []GeneratedFile
}
