package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/LeGarbage/battleshipy/pkg/console"
	"github.com/LeGarbage/battleshipy/pkg/game"
	"github.com/LeGarbage/battleshipy/pkg/protocol"
	"github.com/LeGarbage/battleshipy/pkg/session"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  protocol.MaxMessageSize,
	WriteBufferSize: protocol.MaxMessageSize,
}

func main() {
	var addr = flag.String("addr", ":8080", "http service address")
	flag.Parse()

	done := make(chan error, 1)
	var busy atomic.Bool

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		if !busy.CompareAndSwap(false, true) {
			http.Error(w, "game already in progress", http.StatusConflict)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println(err)
			done <- err
			return
		}
		done <- play(conn)
	})

	fmt.Printf("Server started on %s\n", *addr)
	fmt.Println("\nWaiting for opponent...")

	go func() {
		done <- http.ListenAndServe(*addr, nil)
	}()

	if err := <-done; err != nil {
		log.Fatal(err)
	}
}

func play(conn *websocket.Conn) error {
	defer conn.Close()
	conn.SetReadLimit(protocol.MaxMessageSize)

	id := uuid.New().String()
	fmt.Printf("Opponent has connected, session %s\n", id)

	g := game.New(game.StandardCatalog)
	cons := console.New()
	s := session.New(id, conn, g, cons, cons)

	// Ready goes out right after accept, before placement, so the
	// opponent's handshake read never waits on local setup.
	if err := s.Handshake(session.RoleListener); err != nil {
		return err
	}

	if err := g.PlaceFleet(rand.New(rand.NewSource(time.Now().UnixNano()))); err != nil {
		return err
	}
	fmt.Println("\nGame started! All ships have been placed.")

	err := s.Run(session.RoleListener)
	if errors.Is(err, session.ErrPeerDisconnected) {
		return fmt.Errorf("game aborted: %w", err)
	}
	if err != nil {
		return err
	}

	if g.Won() {
		fmt.Println("Congratulations, you win!")
	} else {
		fmt.Println("Defeat!")
	}
	return nil
}
