package listing

import (
	"fmt"
	"strings"
)

// ID identifica uma persona de servidor emulada.
type ID string

const (
	Apache ID = "apache"
	Nginx  ID = "nginx"
	IIS    ID = "iis"
	Caddy  ID = "caddy"
)

// RenderFunc produz o corpo HTML de uma listagem.
type RenderFunc func(files []FileEntry, subdirs []string) string

// Persona agrupa o renderer e o header Server de um servidor emulado.
type Persona struct {
	ID           ID
	ServerHeader string
	Render       RenderFunc
}

// RenderSnapshot é um atalho para Render(s.Files, s.Subdirs).
func (p Persona) RenderSnapshot(s Snapshot) string {
	return p.Render(s.Files, s.Subdirs)
}

// Tabela fechada de personas. A ordem de order é a ordem de All().
var (
	order    = []ID{Apache, Nginx, IIS, Caddy}
	personas = map[ID]Persona{
		Apache: {ID: Apache, ServerHeader: "Apache/2.4.57", Render: RenderApache},
		Nginx:  {ID: Nginx, ServerHeader: "nginx/1.25.3", Render: RenderNginx},
		IIS:    {ID: IIS, ServerHeader: "Microsoft-IIS/10.0", Render: RenderIIS},
		Caddy:  {ID: Caddy, ServerHeader: "Caddy", Render: RenderCaddy},
	}
)

// Lookup devolve a persona registrada para o id.
func Lookup(id ID) (Persona, bool) {
	p, ok := personas[id]
	return p, ok
}

// ParseID aceita o nome da persona sem diferenciar maiúsculas.
func ParseID(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := personas[id]; !ok {
		return "", fmt.Errorf("persona desconhecida: %q", s)
	}
	return id, nil
}

// All devolve todas as personas na ordem apache, nginx, iis, caddy.
func All() []Persona {
	out := make([]Persona, 0, len(order))
	for _, id := range order {
		out = append(out, personas[id])
	}
	return out
}

// IDs devolve os identificadores conhecidos, na mesma ordem de All.
func IDs() []ID {
	return append([]ID(nil), order...)
}
