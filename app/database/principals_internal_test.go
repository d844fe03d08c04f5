package database

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := hashPassword("s3cret-pw")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "s3cret-pw" {
		t.Fatal("password stored in the clear")
	}
	if !checkPasswordHash("s3cret-pw", hash) {
		t.Error("correct password did not verify")
	}
	if checkPasswordHash("wrong-pw", hash) {
		t.Error("wrong password verified")
	}
}
