package ascii

import "gofetch/ansi"

// logoTable holds the built-in art and palette for every Distro. Lines are
// stored uncolored; Colorize applies the palette one line at a time.
var logoTable = map[Distro]logoData{
	MacOS: {
		lines: []string{
			"                    'c.",
			"                 ,xNMM.",
			"               .OMMMMo",
			"               OMMM0,",
			"     .;loddo:' loolloddol;.",
			"   cKMMMMMMMMMMNWMMMMMMMMMM0:",
			" .KMMMMMMMMMMMMMMMMMMMMMMMWd.",
			" XMMMMMMMMMMMMMMMMMMMMMMMX.",
			";MMMMMMMMMMMMMMMMMMMMMMMM:",
			":MMMMMMMMMMMMMMMMMMMMMMMM:",
			".MMMMMMMMMMMMMMMMMMMMMMMMX.",
			" kMMMMMMMMMMMMMMMMMMMMMMMMWd.",
			" .XMMMMMMMMMMMMMMMMMMMMMMMMMMk",
			"  .XMMMMMMMMMMMMMMMMMMMMMMMMK.",
			"    kMMMMMMMMMMMMMMMMMMMMMMd",
			"     ;KMMMMMMMWXXWMMMMMMMk.",
			"       .cooc,.    .,coo:.",
		},
		colors: []ansi.Color{
			ansi.ColorGreen, ansi.ColorYellow, ansi.ColorRed,
			ansi.ColorMagenta, ansi.ColorBlue, ansi.ColorCyan,
		},
	},
	Ubuntu: {
		lines: []string{
			"            .-/+oossssoo+/-.",
			"        `:+ssssssssssssssssss+:`",
			"      -+ssssssssssssssssssyyssss+-",
			"    .ossssssssssssssssssdMMMNysssso.",
			"   /ssssssssssshdmmNNmmyNMMMMhssssss/",
			"  +ssssssssshmydMMMMMMMNddddyssssssss+",
			" /sssssssshNMMMyhhyyyyhmNMMMNhssssssss/",
			".ssssssssdMMMNhsssssssssshNMMMdssssssss.",
			"+sssshhhyNMMNyssssssssssssyNMMMysssssss+",
			"ossyNMMMNyMMhsssssssssssssshmmmhssssssso",
			"ossyNMMMNyMMhsssssssssssssshmmmhssssssso",
			"+sssshhhyNMMNyssssssssssssyNMMMysssssss+",
			".ssssssssdMMMNhsssssssssshNMMMdssssssss.",
			" /sssssssshNMMMyhhyyyyhdNMMMNhssssssss/",
			"  +sssssssssdmydMMMMMMMMddddyssssssss+",
			"   /ssssssssssshdmNNNNmyNMMMMhssssss/",
			"    .ossssssssssssssssssdMMMNysssso.",
			"      -+sssssssssssssssssyyyssss+-",
			"        `:+ssssssssssssssssss+:`",
			"            .-/+oossssoo+/-.",
		},
		colors: []ansi.Color{ansi.ColorRed, ansi.ColorWhite},
	},
	Arch: {
		lines: []string{
			"                   -`",
			"                  .o+`",
			"                 `ooo/",
			"                `+oooo:",
			"               `+oooooo:",
			"               -+oooooo+:",
			"             `/:-:++oooo+:",
			"            `/++++/+++++++:",
			"           `/++++++++++++++:",
			"          `/+++ooooooooo+++/",
			"         ./ooosssso++osssssso+`",
			"        .oossssso-````/ossssss+`",
			"       -osssssso.      :ssssssso.",
			"      :osssssss/        osssso+++.",
			"     /ossssssss/        +ssssooo/-",
			"   `/ossssso+/:-        -:/+osssso+-",
			"  `+sso+:-`                 `.-/+oso:",
			" `++:.                           `-/+/",
			" .`                                 `/",
		},
		colors: []ansi.Color{ansi.ColorCyan, ansi.ColorBlue},
	},
	Debian: {
		lines: []string{
			"       _,met$$$$$gg.",
			"    ,g$$$$$$$$$$$$$$$P.",
			`  ,g$$P"     """Y$$.".`,
			` ,$$P'              ` + "`$$$.",
			`',$$P       ,ggs.     ` + "`$$b:",
			"`d$$'     ,$P\"'   .    $$$",
			` $$P      d$'     ,    $$P`,
			` $$:      $$.   -    ,d$$'`,
			` $$;      Y$b._   _,d$P'`,
			" Y$$.    `.`\"Y$$$$P\"'",
			" `$$b      \"-.__",
			"  `Y$$",
			"   `Y$$.",
			"     `$$b.",
			"       `Y$$b.",
			"          `\"Y$b._",
			"              `\"\"\"",
		},
		colors: []ansi.Color{ansi.ColorRed, ansi.ColorWhite},
	},
	Fedora: {
		lines: []string{
			"             .',;::::;,'.",
			"         .';;;;;;;;;;;;;,'.",
			"      .,;;;;;;;;;;;;;;;;;;;,.",
			"    .,;;;;;;;;;;;;;;;;;;;;;;;;,",
			"   .;;;;;;;;;;;;;;;;;;;;;;;;;;;;;,",
			"  .;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;,",
			" .;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;,",
			".;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;,",
			";;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;",
			";;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;",
			";;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;",
			";;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;",
			".;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;",
			" ';;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;'",
			"  ';;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;;'",
			"    ';;;;;;;;;;;;;;;;;;;;;;;;;;;;;;'",
			"        '''''''''''''''''''''",
		},
		colors: []ansi.Color{ansi.ColorBlue, ansi.ColorWhite},
	},
	Linux: {
		lines: []string{
			"        #####",
			"       #######",
			"       ##O#O##",
			"       #VVVVV#",
			"       ##>|<##",
			"      #########",
			"     ###########",
			"    #############",
			"   ###############",
			"  #################",
			" ###################",
			"#####################",
			"#####################",
			"#####################",
			" ###################",
			"  #################",
			"   ###############",
		},
		colors: []ansi.Color{ansi.ColorYellow, ansi.ColorWhite},
	},
	// Four-pane design from the Windows 10/11 client logo.
	Windows: {
		lines: []string{
			"                               ..,,",
			"                    ....,,:;+ccllll",
			"      ...,,+:;  cllllllllllllllllll",
			",cclllllllllll  lllllllllllllllllll",
			"llllllllllllll  lllllllllllllllllll",
			"llllllllllllll  lllllllllllllllllll",
			"llllllllllllll  lllllllllllllllllll",
			"llllllllllllll  lllllllllllllllllll",
			"llllllllllllll  lllllllllllllllllll",
			"",
			"llllllllllllll  lllllllllllllllllll",
			"llllllllllllll  lllllllllllllllllll",
			"llllllllllllll  lllllllllllllllllll",
			"llllllllllllll  lllllllllllllllllll",
			"llllllllllllll  lllllllllllllllllll",
			"`'ccllllllllll  lllllllllllllllllll",
			"       `' \\*::  :ccllllllllllllllll",
			"                       ````''*::cll",
		},
		colors: []ansi.Color{ansi.ColorBlue, ansi.ColorRed, ansi.ColorGreen, ansi.ColorYellow},
	},
}
