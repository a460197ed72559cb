package main

// urlOpenedMsg reports the result of opening an endpoint in the browser
type urlOpenedMsg struct {
	url string
	err error
}
