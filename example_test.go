package sqlq_test

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/ejfirestar/sqlq"

	_ "github.com/mattn/go-sqlite3"
)

func Example() {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		log.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	_, err = db.Exec(`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, age INTEGER)`)
	if err != nil {
		log.Fatal(err)
	}
	_, err = db.Exec(`INSERT INTO users (name, age) VALUES ('Alice', 30), ('Bob', 42), ('Carol', 25)`)
	if err != nil {
		log.Fatal(err)
	}

	q, err := sqlq.New(db)
	if err != nil {
		log.Fatal(err)
	}

	var name sqlq.Column[string]
	var age sqlq.Column[int]
	err = q.Prepare("SELECT name, age FROM users WHERE age > ? ORDER BY age").
		BindInt(26).
		Query(context.Background()).
		ScanAll(&name, &age)
	if err != nil {
		log.Fatal(err)
	}

	for n := range name.Values {
		fmt.Println(name.Values[n], age.Values[n])
	}
	// Output:
	// Alice 30
	// Bob 42
}

var db *sql.DB

func ExampleStmt_Update() {
	q, err := sqlq.New(db)
	if err != nil {
		log.Fatal(err)
	}
	affected, err := q.Prepare("UPDATE users SET active = ? WHERE age > ?").
		BindBool(false).
		BindInt(65).
		Update(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(affected, "users retired")
}

func ExampleStmt_Next() {
	q, err := sqlq.New(db)
	if err != nil {
		log.Fatal(err)
	}
	q.Prepare("SELECT name, email FROM users ORDER BY name").Query(context.Background())
	for q.Next() {
		var name string
		var email sql.Null[string]
		if err := q.Scan(&name, &email); err != nil {
			log.Fatal(err)
		}
		fmt.Println(name, email.V)
	}
	if err := q.Err(); err != nil {
		log.Fatal(err)
	}
}

func ExampleFetchOne() {
	q, err := sqlq.New(db)
	if err != nil {
		log.Fatal(err)
	}
	count, err := sqlq.FetchOne[int64](
		q.Prepare("SELECT COUNT(*) FROM users").Query(context.Background()))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(count.V, "users")
}

func ExampleStmt_Seek() {
	q, err := sqlq.New(db)
	if err != nil {
		log.Fatal(err)
	}
	q.Prepare("SELECT name FROM users ORDER BY id").Query(context.Background())
	if q.RowExists(2) {
		var name string
		if err := q.Seek(2).Scan(&name); err != nil {
			log.Fatal(err)
		}
		fmt.Println("second user:", name)
	}
}
