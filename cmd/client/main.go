package main

import (
	"backend/internal/client"
	"backend/internal/uimeta"
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "адрес сервера")
	login := flag.String("login", "", "логин")
	password := flag.String("password", "", "пароль")
	flag.Parse()

	api := client.New(*server)
	state, message, err := api.Login(*login, *password)
	if err != nil {
		log.WithError(err).Fatal("login request failed")
	}
	if state == nil {
		fmt.Println(message)
		os.Exit(1)
	}
	fmt.Println(message)

	doc, err := api.Interface()
	if err != nil {
		log.WithError(err).Fatal("failed to fetch interface document")
	}

	app := &app{api: api, doc: doc, views: state.AllowedViews}
	app.run(bufio.NewScanner(os.Stdin))
}

type app struct {
	api   *client.Client
	doc   *uimeta.Document
	views []string

	nav   client.Stack
	table *client.Table
}

func (a *app) run(in *bufio.Scanner) {
	fmt.Printf("Доступные представления: %s\n", strings.Join(a.views, ", "))
	fmt.Println("Команды: open <view> | sort <колонка> | filter <текст> | back | views | exit")
	for {
		fmt.Printf("%s> ", a.prompt())
		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(in.Text())
		cmd, arg, _ := strings.Cut(line, " ")
		switch cmd {
		case "":
		case "open":
			a.open(arg)
		case "sort":
			a.sort(arg)
		case "filter":
			a.filter(arg)
		case "back":
			if crumb, ok := a.nav.Back(); ok {
				a.open(crumb.View)
			}
		case "views":
			fmt.Println(strings.Join(a.views, ", "))
		case "exit", "quit":
			if err := a.api.Logout(); err != nil {
				log.WithError(err).Warn("logout failed")
			}
			return
		default:
			fmt.Println("Неизвестная команда.")
		}
	}
}

func (a *app) prompt() string {
	var parts []string
	for _, crumb := range a.nav.Trail() {
		parts = append(parts, crumb.Title)
	}
	return strings.Join(parts, " / ")
}

func (a *app) allowed(view string) bool {
	for _, v := range a.views {
		if v == view {
			return true
		}
	}
	return false
}

func (a *app) open(view string) {
	if !a.allowed(view) {
		fmt.Println("Представление недоступно для вашей роли.")
		return
	}
	desc, ok := a.doc.Get(view)
	if !ok {
		fmt.Println("Представление не описано сервером.")
		return
	}
	rows, err := a.api.List(desc.Controller)
	if err != nil {
		fmt.Println("Ошибка загрузки данных:", err)
		return
	}
	a.table = client.NewTable(desc, rows)
	a.nav.Open(view, desc.TitleMain)
	a.render()
}

func (a *app) sort(column string) {
	if a.table == nil {
		fmt.Println("Сначала откройте представление.")
		return
	}
	a.table.ToggleSort(column)
	a.render()
}

func (a *app) filter(q string) {
	if a.table == nil {
		fmt.Println("Сначала откройте представление.")
		return
	}
	a.table.SetFilter(q)
	a.render()
}

func (a *app) render() {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	var header []string
	for _, col := range a.table.Columns {
		header = append(header, col.Label)
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range a.table.Rows() {
		var cells []string
		for _, col := range a.table.Columns {
			cell := ""
			if v := row[col.Key]; v != nil {
				cell = fmt.Sprint(v)
			}
			cells = append(cells, cell)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	_ = w.Flush()
}
