// Package fixtures contém as tabelas de arquivos sintéticos servidas pelo
// emulador.
package fixtures

import (
	"time"

	"github.com/raywall/listing-fixtures/pkg/listing"
	"github.com/raywall/listing-fixtures/tools/emulator/types"
)

// Default devolve a árvore padrão. Os nomes cobrem espaço, múltiplos pontos
// e arquivo oculto. Cada chamada devolve slices novos.
func Default() types.Tree {
	return types.Tree{
		Files: []listing.FileEntry{
			{Name: "file1.txt", Size: 123, ModTime: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)},
			{Name: "file.two.jpg", Size: 4567, ModTime: time.Date(2024, time.March, 1, 12, 1, 0, 0, time.UTC)},
			{Name: "space name.txt", Size: 2048, ModTime: time.Date(2024, time.March, 1, 12, 2, 0, 0, time.UTC)},
			{Name: ".hidden", Size: 10, ModTime: time.Date(2024, time.March, 1, 12, 3, 0, 0, time.UTC)},
		},
		SubName: "sub",
		SubFiles: []listing.FileEntry{
			{Name: "deep.md", Size: 89, ModTime: time.Date(2024, time.March, 2, 1, 2, 0, 0, time.UTC)},
		},
	}
}
