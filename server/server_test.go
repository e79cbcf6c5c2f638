package server

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Koliatoday/goit-algo-hw-04/internal/bench"
)

func TestServer(t *testing.T) {
	results := []bench.Result{
		{Size: 10, InsertionSort: 0.001, MergeSort: 0.002, SortInPlace: 0.0001, SortedCopy: 0.0002},
		{Size: 100, InsertionSort: 0.1, MergeSort: 0.02, SortInPlace: 0.001, SortedCopy: 0.002},
	}
	app := New(results)

	t.Run("chart page", func(t *testing.T) {
		assert := assert.New(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		assert.NoError(err)
		assert.Equal(200, resp.StatusCode)
		assert.Contains(resp.Header.Get("Content-Type"), "text/html")

		body, err := io.ReadAll(resp.Body)
		assert.NoError(err)
		assert.Contains(string(body), "insertion_sort (measured)")
	})

	t.Run("results as json", func(t *testing.T) {
		assert := assert.New(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/results.json", nil))
		assert.NoError(err)
		assert.Equal(200, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		assert.NoError(err)
		assert.Contains(string(body), `"size":10`)
		assert.Contains(string(body), `"merge_sort"`)
	})

	t.Run("results as msgpack", func(t *testing.T) {
		assert := assert.New(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/results.msgpack", nil))
		assert.NoError(err)
		assert.Equal(200, resp.StatusCode)
		assert.Equal("application/msgpack", resp.Header.Get("Content-Type"))

		body, err := io.ReadAll(resp.Body)
		assert.NoError(err)
		var decoded []bench.Result
		assert.NoError(msgpack.Unmarshal(body, &decoded))
		assert.Equal(results, decoded)
	})
}
