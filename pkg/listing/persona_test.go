package listing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := map[ID]string{
		Apache: "Apache/2.4.57",
		Nginx:  "nginx/1.25.3",
		IIS:    "Microsoft-IIS/10.0",
		Caddy:  "Caddy",
	}
	for id, header := range tests {
		p, ok := Lookup(id)
		require.True(t, ok, id)
		assert.Equal(t, id, p.ID)
		assert.Equal(t, header, p.ServerHeader)
		assert.NotNil(t, p.Render)
	}

	_, ok := Lookup("lighttpd")
	assert.False(t, ok)
}

func TestParseID(t *testing.T) {
	id, err := ParseID(" NGINX ")
	require.NoError(t, err)
	assert.Equal(t, Nginx, id)

	_, err = ParseID("tomcat")
	assert.Error(t, err)
}

func TestAll_FixedOrder(t *testing.T) {
	var ids []ID
	for _, p := range All() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []ID{Apache, Nginx, IIS, Caddy}, ids)
	assert.Equal(t, ids, IDs())
}

func TestAnchors(t *testing.T) {
	body := Document("x", RenderIIS([]FileEntry{{Name: "a.txt", Size: 1}}, []string{"d"}))

	all, err := Anchors(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].IsParent())
	assert.Equal(t, Anchor{Href: "d/", Text: "d"}, all[1])
	assert.Equal(t, Anchor{Href: "a.txt", Text: "a.txt"}, all[2])

	entries, err := Entries(strings.NewReader(body))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
