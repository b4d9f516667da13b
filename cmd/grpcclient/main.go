// Package main implements very simple grpc client that can be used for testing devscore grpc server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	appGrpc "github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/api/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	serverAddr = flag.String("s", "localhost:9090", "The server address in the format of host:port")
	username   = flag.String("u", "octocat", "Github username")
	userID     = flag.String("id", "grpcclient", "User id the score is saved under")
	timeout    = flag.Duration("t", time.Minute, "Request timeout")
	asJSON     = flag.Bool("json", false, "Print raw json reply")
)

func main() {
	flag.Parse()

	conn, err := grpc.NewClient(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()
	client := appGrpc.NewProfilesClient(conn)

	req, err := structpb.NewStruct(map[string]interface{}{
		"username": *username,
		"user_id":  *userID,
	})
	if err != nil {
		log.Fatalf("building request: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	resp, err := client.AnalyzeProfile(ctx, req)
	if err != nil {
		log.Fatalf("server response error: %v", err)
	}
	if *asJSON {
		b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
		if err != nil {
			log.Fatalf("encoding response to json error: %v", err)
		}
		fmt.Println(string(b))
		return
	}

	analysis := resp.AsMap()

	fmt.Printf("%s: %.2f points\n\n", analysis["username"], analysis["total_points"])
	fmt.Print("   Stars |  Forks | Commits | Difficulty | Name\n")
	fmt.Print("-------------------------------------------------------\n")
	details, _ := analysis["repo_details"].([]interface{})
	for _, d := range details {
		r, ok := d.(map[string]interface{})
		if !ok {
			continue
		}
		fmt.Printf("%8.0f | %6.0f | %7.0f | %10s | %s\n", r["stars"], r["forks"], r["commits"], r["difficulty"], r["name"])
	}
}
