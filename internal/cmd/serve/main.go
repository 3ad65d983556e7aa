// Copyright 2025 The string-difference-finder Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// serve hosts the comparison page: a home page with two text areas and a
// compare endpoint that runs the engine and returns both rendered views.
//
// The page and its styling are presentation glue. Engine failures (for
// example resource exhaustion on absurdly large inputs) are reported as a
// generic error instead of taking the process down.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	diff "github.com/krkarma777/string-difference-finder"
	"github.com/krkarma777/string-difference-finder/htmldiff"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", "localhost:8080", "address to listen on")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handleHome)
	mux.Handle("POST /api/diff", handleDiff(logger))

	logger.Info().Str("addr", *addr).Msg("listening")
	return http.ListenAndServe(*addr, mux)
}

func handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, homePage)
}

type diffRequest struct {
	X    string `json:"x"`
	Y    string `json:"y"`
	Fast bool   `json:"fast,omitempty"`
}

type diffResponse struct {
	Deleted   string  `json:"deleted"`
	Inserted  string  `json:"inserted"`
	ElapsedMS float64 `json:"elapsed_ms"`
}

func handleDiff(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req diffRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn().Err(err).Msg("bad compare request")
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := compare(req)
		if err != nil {
			logger.Error().Err(err).Msg("compare failed")
			http.Error(w, "could not compute differences", http.StatusInternalServerError)
			return
		}

		logger.Info().
			Int("x_len", len(req.X)).
			Int("y_len", len(req.Y)).
			Bool("fast", req.Fast).
			Float64("elapsed_ms", resp.ElapsedMS).
			Msg("compare")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Warn().Err(err).Msg("writing compare response")
		}
	}
}

// compare runs the engine. A panic, which for valid inputs can only come
// from resource exhaustion, is converted into an error so the handler can
// answer with a generic failure message.
func compare(req diffRequest) (resp diffResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("compare: %v", r)
		}
	}()

	var opts []diff.Option
	if req.Fast {
		opts = append(opts, diff.Fast())
	}
	s, elapsed := diff.Compare(req.X, req.Y, opts...)
	return diffResponse{
		Deleted:   htmldiff.Deleted(s),
		Inserted:  htmldiff.Inserted(s),
		ElapsedMS: float64(elapsed) / float64(time.Millisecond),
	}, nil
}

const homePage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>String Difference Finder</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 60rem; }
textarea { width: 100%; height: 8rem; font-family: monospace; }
pre { font-family: monospace; white-space: pre-wrap; border: 1px solid #ccc; padding: 0.5rem; }
.diff-del { background: #fdd; }
.diff-ins { background: #dfd; }
.diff-pad { background: #eee; }
#elapsed { color: #666; }
</style>
</head>
<body>
<h1>String Difference Finder</h1>
<textarea id="x" placeholder="Original text"></textarea>
<textarea id="y" placeholder="Changed text"></textarea>
<p><button id="compare">Compare</button> <span id="elapsed"></span></p>
<pre id="deleted"></pre>
<pre id="inserted"></pre>
<script>
document.getElementById('compare').addEventListener('click', async () => {
	const body = JSON.stringify({
		x: document.getElementById('x').value,
		y: document.getElementById('y').value,
	});
	const resp = await fetch('/api/diff', {method: 'POST', body});
	if (!resp.ok) {
		document.getElementById('elapsed').textContent = 'could not compute differences';
		return;
	}
	const result = await resp.json();
	document.getElementById('deleted').innerHTML = result.deleted;
	document.getElementById('inserted').innerHTML = result.inserted;
	document.getElementById('elapsed').textContent = result.elapsed_ms.toFixed(1) + ' ms';
});
</script>
</body>
</html>
`
