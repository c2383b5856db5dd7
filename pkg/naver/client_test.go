package naver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		ClientID:     "test-client-id",
		ClientSecret: "test-client-secret",
		BaseURL:      server.URL,
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name:   "Missing client id",
			config: Config{ClientSecret: "s", BaseURL: "http://example.com"},
		},
		{
			name:   "Missing client secret",
			config: Config{ClientID: "id", BaseURL: "http://example.com"},
		},
		{
			name:   "Missing base URL",
			config: Config{ClientID: "id", ClientSecret: "s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.config)
			assert.Error(t, err)
			assert.Nil(t, client)
		})
	}
}

func TestClient_Search(t *testing.T) {
	var gotQuery, gotDisplay, gotStart, gotSort string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-client-id", r.Header.Get("X-Naver-Client-Id"))
		assert.Equal(t, "test-client-secret", r.Header.Get("X-Naver-Client-Secret"))
		assert.Equal(t, "/book.json", r.URL.Path)

		q := r.URL.Query()
		gotQuery = q.Get("query")
		gotDisplay = q.Get("display")
		gotStart = q.Get("start")
		gotSort = q.Get("sort")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total": 123,
			"start": 1,
			"display": 2,
			"items": [
				{
					"title": "<b>채식주의자</b>",
					"link": "https://book.example.com/1",
					"image": "https://img.example.com/1.jpg",
					"author": "한강",
					"publisher": "창비",
					"pubdate": "20071030",
					"isbn": "8936433598 9788936433598",
					"description": "<b>한강</b> 연작소설",
					"discount": "10800"
				},
				{
					"title": "소년이 온다",
					"link": "https://book.example.com/2",
					"image": "https://img.example.com/2.jpg",
					"author": "한강",
					"publisher": "창비",
					"pubdate": "20140519",
					"isbn": "9788936434120",
					"description": "light",
					"discount": "12600"
				}
			]
		}`))
	})

	result, err := client.Search(context.Background(), "한강", 0, 0, "")
	require.NoError(t, err)

	// defaults applied
	assert.Equal(t, "한강", gotQuery)
	assert.Equal(t, "10", gotDisplay)
	assert.Equal(t, "1", gotStart)
	assert.Equal(t, "sim", gotSort)

	assert.Equal(t, 123, result.Total)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "채식주의자", result.Items[0].Title)
	assert.Equal(t, "8936433598", result.Items[0].ISBN)
	assert.Equal(t, "한강 연작소설", result.Items[0].Description)
	assert.NotContains(t, result.Items[0].Title, "<")
	assert.Equal(t, 2007, result.Items[0].PubDate.Year())
}

func TestClient_Search_EmptyQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not be sent")
	})

	result, err := client.Search(context.Background(), "", 10, 1, SortSim)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Nil(t, result)
}

func TestClient_SearchByISBN(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/book_adv.json", r.URL.Path)
		assert.Equal(t, "9788932917245", r.URL.Query().Get("d_isbn"))
		assert.Equal(t, "1", r.URL.Query().Get("display"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total": 1,
			"start": 1,
			"display": 1,
			"items": [
				{
					"title": "<b>데미안</b>",
					"link": "https://book.example.com/3",
					"image": "https://img.example.com/3.jpg",
					"author": "헤르만 헤세",
					"publisher": "문학과지성사",
					"pubdate": "20121226",
					"isbn": "8932917248 9788932917245",
					"description": "에밀 싱클레어의 <b>이야기</b>",
					"discount": "9000"
				}
			]
		}`))
	})

	item, err := client.SearchByISBN(context.Background(), "9788932917245")
	require.NoError(t, err)

	assert.Equal(t, "데미안", item.Title)
	assert.Equal(t, "8932917248", item.ISBN)
	assert.Equal(t, "에밀 싱클레어의 이야기", item.Description)
	assert.Equal(t, 2012, item.PubDate.Year())
}

func TestClient_SearchByISBN_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total": 0, "start": 1, "display": 0, "items": []}`))
	})

	item, err := client.SearchByISBN(context.Background(), "0000000000000")
	assert.ErrorIs(t, err, ErrBookNotFound)
	assert.Nil(t, item)
}

func TestClient_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Search(context.Background(), "query", 10, 1, SortSim)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	_, err := client.Search(context.Background(), "query", 10, 1, SortSim)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrBookNotFound)
}
