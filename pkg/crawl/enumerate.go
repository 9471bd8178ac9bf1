package crawl

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// DefaultExclusions são nomes de diretório nunca visitados pelo coletor.
var DefaultExclusions = []string{
	".git", "node_modules", "dist", "build", ".servers",
	".idea", ".vscode", "coverage", "listings",
}

// Enumerator lista os diretórios de uma árvore como caminhos relativos.
type Enumerator struct {
	fs      afero.Fs
	exclude map[string]struct{}
	log     zerolog.Logger
}

// New cria um Enumerator. Exclusões comparam apenas o nome do diretório,
// em qualquer profundidade.
func New(fsys afero.Fs, exclude []string, log zerolog.Logger) *Enumerator {
	set := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		set[name] = struct{}{}
	}
	return &Enumerator{fs: fsys, exclude: set, log: log}
}

// Excluded informa se um diretório com esse nome é ignorado.
func (e *Enumerator) Excluded(name string) bool {
	_, ok := e.exclude[name]
	return ok
}

// Enumerate devolve "" (a raiz) seguido de todos os subdiretórios não
// excluídos, separados por "/". Os filhos de um diretório entram na lista
// quando ele é visitado; depois cada filho é percorrido.
func (e *Enumerator) Enumerate(root string) ([]string, error) {
	children, err := e.children(root)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler raiz '%s': %w", root, err)
	}

	dirs := []string{""}
	e.walk(root, "", children, &dirs)
	return dirs, nil
}

// child é um subdiretório direto. Links simbólicos para diretório entram na
// lista, mas não são percorridos.
type child struct {
	name    string
	descend bool
}

func (e *Enumerator) walk(root, rel string, children []child, dirs *[]string) {
	for _, c := range children {
		*dirs = append(*dirs, path.Join(rel, c.name))
	}

	for _, c := range children {
		if !c.descend {
			continue
		}
		childRel := path.Join(rel, c.name)
		grand, err := e.children(filepath.Join(root, filepath.FromSlash(childRel)))
		if err != nil {
			e.log.Warn().Err(err).Str("dir", childRel).Msg("diretório ilegível ignorado")
			continue
		}
		e.walk(root, childRel, grand, dirs)
	}
}

// children lista os subdiretórios diretos que não estão excluídos.
func (e *Enumerator) children(dir string) ([]child, error) {
	entries, err := afero.ReadDir(e.fs, dir)
	if err != nil {
		return nil, err
	}

	var out []child
	for _, info := range entries {
		if e.Excluded(info.Name()) {
			continue
		}
		switch {
		case info.IsDir():
			out = append(out, child{name: info.Name(), descend: true})
		case info.Mode()&os.ModeSymlink != 0 && e.linksToDir(filepath.Join(dir, info.Name())):
			out = append(out, child{name: info.Name()})
		}
	}
	return out, nil
}

// linksToDir segue o link e informa se o alvo é um diretório. Links
// quebrados ficam de fora.
func (e *Enumerator) linksToDir(name string) bool {
	info, err := e.fs.Stat(name)
	return err == nil && info.IsDir()
}
