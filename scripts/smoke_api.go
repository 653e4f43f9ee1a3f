package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(body []byte) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	email := os.Getenv("SMOKE_EMAIL")
	password := os.Getenv("SMOKE_PASSWORD")
	if email == "" || password == "" {
		color.Red("Set SMOKE_EMAIL and SMOKE_PASSWORD for an existing account")
		os.Exit(1)
	}

	color.Cyan("🚀 Starting Notes API Smoke Test\n")

	// 1. Issue Token
	color.Yellow("\n1. Issue Bearer Token")
	resp, body, err := sendRequest("POST", "/auth/token", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	json.Unmarshal(body, &tokenResp)
	if tokenResp.AccessToken == "" {
		color.Red("No access token in response")
		prettyPrint(body)
		os.Exit(1)
	}
	token := tokenResp.AccessToken

	// 2. Create Note
	color.Yellow("\n2. Create Note")
	resp, body, err = sendRequest("POST", "/notes", token, map[string]string{
		"title":   "Smoke test note",
		"content": "Created by scripts/smoke_api.go",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var created struct {
		Id uint `json:"id"`
	}
	json.Unmarshal(body, &created)
	prettyPrint(body)

	// 3. List Notes
	color.Yellow("\n3. List Notes")
	resp, body, _ = sendRequest("GET", "/notes", token, nil)
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 4. Show Note
	color.Yellow("\n4. Show Note")
	resp, body, _ = sendRequest("GET", fmt.Sprintf("/notes/%d", created.Id), token, nil)
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 5. Update Note
	color.Yellow("\n5. Update Note")
	resp, body, _ = sendRequest("PUT", fmt.Sprintf("/notes/%d", created.Id), token, map[string]string{
		"title":   "Smoke test note (edited)",
		"content": "Edited by scripts/smoke_api.go",
	})
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 6. Delete Note
	color.Yellow("\n6. Delete Note")
	resp, body, _ = sendRequest("DELETE", fmt.Sprintf("/notes/%d", created.Id), token, nil)
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	color.Cyan("\n✅ Smoke test finished")
}
