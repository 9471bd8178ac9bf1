package listing

import "time"

// FileEntry é um arquivo sintético exibido numa listagem.
type FileEntry struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Snapshot é o conteúdo de um nível de diretório. A ordem dos slices é a
// ordem de exibição; nenhum renderer reordena.
type Snapshot struct {
	Files   []FileEntry
	Subdirs []string
}

// placeholderTime devolve o horário exibido para subdiretórios, que herdam
// o timestamp do primeiro arquivo. Sem arquivos, usa o time.Time zero.
func placeholderTime(files []FileEntry) time.Time {
	if len(files) == 0 {
		return time.Time{}
	}
	return files[0].ModTime
}
