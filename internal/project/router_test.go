package project

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRouter(t *testing.T) {
	t.Parallel()

	got := GenerateRouter([]RouteEntry{
		{Path: "/", Component: "Home", Module: "./home"},
		{Path: "/about", Component: "About", Module: "./about"},
	}, "../themes/processed.css")

	want := `import React from 'react'
import ReactDOM from 'react-dom/client'
import { BrowserRouter, Routes, Route } from 'react-router-dom'
import './index.css'
import '../themes/processed.css';

import Home from './home';
import About from './about';

ReactDOM.createRoot(document.getElementById('root')!).render(
  <React.StrictMode>
    <BrowserRouter>
      <Routes>
        <Route path="/" element={<Home />} />
        <Route path="/about" element={<About />} />
      </Routes>
    </BrowserRouter>
  </React.StrictMode>,
)
`
	require.Equal(t, want, got)
}

func TestGenerateRouterImportsSharedComponentOnce(t *testing.T) {
	t.Parallel()

	got := GenerateRouter([]RouteEntry{
		{Path: "/", Component: "Home", Module: "./home"},
		{Path: "/index", Component: "Home", Module: "./home"},
	}, "")

	require.Equal(t, 1, countOf(got, "import Home from './home';"))
	require.Equal(t, 2, countOf(got, "element={<Home />}"))
	require.NotContains(t, got, "processed.css")
}

func TestRelativeImport(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, target, want string
	}{
		{"src", "src/home", "./home"},
		{"src", "themes/processed.css", "../themes/processed.css"},
		{"web/app", "web/styles/processed.css", "../styles/processed.css"},
		{".", "themes/processed.css", "./themes/processed.css"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, relativeImport(tc.from, tc.target), tc.from+" -> "+tc.target)
	}
}

func countOf(s, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			n++
		}
	}
	return n
}
