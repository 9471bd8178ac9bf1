package types

import (
	"testing"

	"github.com/raywall/listing-fixtures/pkg/listing"
)

func TestTree_Snapshots(t *testing.T) {
	tree := Tree{
		Files:    []listing.FileEntry{{Name: "a.txt", Size: 1}},
		SubName:  "nested",
		SubFiles: []listing.FileEntry{{Name: "b.txt", Size: 2}},
	}

	root := tree.RootSnapshot()
	if len(root.Files) != 1 || root.Files[0].Name != "a.txt" {
		t.Errorf("Arquivos da raiz incorretos: %+v", root.Files)
	}
	if len(root.Subdirs) != 1 || root.Subdirs[0] != "nested" {
		t.Errorf("Raiz deveria ter exatamente o subdiretório 'nested': %v", root.Subdirs)
	}

	sub := tree.SubSnapshot()
	if len(sub.Subdirs) != 0 {
		t.Errorf("Subdiretório não deveria ter aninhamento: %v", sub.Subdirs)
	}
	if len(sub.Files) != 1 || sub.Files[0].Name != "b.txt" {
		t.Errorf("Arquivos do subdiretório incorretos: %+v", sub.Files)
	}
}
