/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

// qrHandler generates a PNG QR code pointing at a lobby's join URL, grounded
// on the teacher's celebrity-game QR share button. We are at
// /lobby/:lobbycode/qr; strip the trailing "/qr" to recover the lobby URL
// a player's phone camera should scan.
func qrHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	lobbyCode := ps.ByName("lobbycode")
	if lobbyCode == "" {
		http.Error(w, "missing lobby code", http.StatusBadRequest)
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	path := strings.TrimSuffix(r.URL.Path, "/qr")
	url := scheme + "://" + r.Host + path

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
