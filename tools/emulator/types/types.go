package types

import "github.com/raywall/listing-fixtures/pkg/listing"

// Tree é a árvore sintética servida por cada persona: um diretório raiz com
// arquivos e exatamente um subdiretório, que por sua vez só tem arquivos.
type Tree struct {
	Files    []listing.FileEntry
	SubName  string
	SubFiles []listing.FileEntry
}

// RootSnapshot devolve o conteúdo do diretório raiz.
func (t Tree) RootSnapshot() listing.Snapshot {
	return listing.Snapshot{Files: t.Files, Subdirs: []string{t.SubName}}
}

// SubSnapshot devolve o conteúdo do subdiretório (sem aninhamento).
func (t Tree) SubSnapshot() listing.Snapshot {
	return listing.Snapshot{Files: t.SubFiles}
}
