package main

import "hrdesk/internal/app/server"

func main() {
	server.Run()
}
