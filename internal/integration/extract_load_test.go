package integration

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"commodities-etl/internal/bootstrap"
	"commodities-etl/internal/domain"
	"commodities-etl/internal/infrastructure/pg"
	"commodities-etl/internal/infrastructure/pg/pgtest"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/require"
)

// 2025-11-03 .. 2025-11-07, midnight New York.
var sessionStarts = []int64{1762146000, 1762232400, 1762318800, 1762405200, 1762491600}

var basePrice = map[string]float64{"CL=F": 60, "GC=F": 4000, "SI=F": 48}

// yahooStub serves five daily bars per known symbol and a 503 for symbols in failing.
func yahooStub(t *testing.T, failing ...string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sym := strings.TrimPrefix(r.URL.Path, "/v8/finance/chart/")
		for _, f := range failing {
			if sym == f {
				http.Error(w, "upstream down", http.StatusServiceUnavailable)
				return
			}
		}
		base, ok := basePrice[sym]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`)
			return
		}
		closes := make([]string, len(sessionStarts))
		ts := make([]string, len(sessionStarts))
		for i, s := range sessionStarts {
			closes[i] = fmt.Sprintf("%.2f", base+float64(i))
			ts[i] = fmt.Sprint(s)
		}
		fmt.Fprintf(w, `{"chart":{"result":[{"meta":{"symbol":%q,"exchangeTimezoneName":"America/New_York"},
		  "timestamp":[%s],"indicators":{"quote":[{"close":[%s]}]}}],"error":null}}`,
			sym, strings.Join(ts, ","), strings.Join(closes, ","))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setupJob(t *testing.T, dsn, apiBase, schema string) *bootstrap.Job {
	t.Helper()
	t.Setenv("DATABASE_URL", dsn)
	t.Setenv("DB_SCHEMA", schema)
	t.Setenv("PROVIDER", "yahoo")
	t.Setenv("YAHOO_API_BASE", apiBase)
	t.Setenv("LOCK_BACKEND", "none")
	t.Setenv("FETCH_RETRIES", "0")
	job, cleanup, err := bootstrap.InitJob(context.Background())
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return job
}

func TestExtractLoad_ReplacesCommoditiesTable(t *testing.T) {
	db, dsn := pgtest.Start(t)
	ctx := context.Background()
	job := setupJob(t, dsn, yahooStub(t).URL, "public")

	res, err := job.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.RunStatusLoaded, res.Status)
	require.Equal(t, 15, res.Rows)
	require.Equal(t, domain.Commodities, res.Symbols)

	// a second run leaves the same rows, not twice as many
	_, err = job.Run(ctx)
	require.NoError(t, err)

	got, err := pg.NewCommoditiesTable(db).ReadAll(ctx, "public")
	require.NoError(t, err)
	require.Len(t, got, 15)
	require.ElementsMatch(t, domain.Commodities, domain.Symbols(got))
	perSymbol := map[string]int{}
	for _, q := range got {
		perSymbol[q.Symbol]++
		require.True(t, q.Close.Valid)
	}
	for _, sym := range domain.Commodities {
		require.LessOrEqual(t, perSymbol[sym], 5)
	}
	require.Equal(t, null.FloatFrom(60), got[0].Close)
}

func TestExtractLoad_FetchFailureLeavesTableUnchanged(t *testing.T) {
	db, dsn := pgtest.Start(t)
	ctx := context.Background()
	table := pg.NewCommoditiesTable(db)

	_, err := setupJob(t, dsn, yahooStub(t).URL, "public").Run(ctx)
	require.NoError(t, err)
	prior, err := table.ReadAll(ctx, "public")
	require.NoError(t, err)
	require.Len(t, prior, 15)

	job := setupJob(t, dsn, yahooStub(t, "GC=F").URL, "public")
	res, err := job.Run(ctx)
	require.Error(t, err)
	require.Equal(t, domain.RunStatusFailed, res.Status)

	after, err := table.ReadAll(ctx, "public")
	require.NoError(t, err)
	require.Equal(t, prior, after)
}

func TestExtractLoad_MissingSchema(t *testing.T) {
	db, dsn := pgtest.Start(t)
	ctx := context.Background()
	job := setupJob(t, dsn, yahooStub(t).URL, "no_such_schema")

	_, err := job.Run(ctx)
	require.Error(t, err)
	require.ErrorContains(t, err, "no_such_schema")

	var n int
	require.NoError(t, db.Pool.QueryRow(ctx,
		`SELECT count(*) FROM pg_tables WHERE tablename = 'commodities'`).Scan(&n))
	require.Zero(t, n)
}
