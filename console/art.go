package console

import "github.com/tiggercwh/stone-paper-scissors/gameModel"

// Every art piece is artHeight lines of artWidth columns.
const (
	artHeight = 20
	artWidth  = 60
)

var (
	stoneArt = []string{
		"                                                            ",
		"                                                            ",
		"                                                            ",
		"                        ...'..                              ",
		"                ...,;cloooolodddl:,..                       ",
		"          .::clllooooooooooollllllooddddl:,'.               ",
		"         :lllllllooooooooddoolllllllllldxxxxxxl'            ",
		"        ,;::cllllooooooooddddddlllllllllldxxxxxxd:          ",
		"       .,,,,,,,:clodoooooddddddddollllllllxxxxxxxxxc.       ",
		"        ,,,,,,,,,,,,;::clddddddddddddooolloxxxxxxxxx:       ",
		"        .,,,,,,,,,,,,,,,,,:clodddddddxxxxdoodxxxxxx:        ",
		"        ,;;;,,,,,,,,,,,,,,,,,,,;:ccdxxxxxxxxxddlol.         ",
		"       .;;;;;;;;;;;,,,,,,,,,,,;;;,,::::::;,,'''             ",
		"       .;;;;;;;;;;;;;;:;;;,,,,''''''''''''''                ",
		"           ';;;;;;;,,,'''''''''''''''''''.                  ",
		"                         .''''''''''''.                     ",
		"                                                            ",
		"                                                            ",
		"                                                            ",
		"                                                            ",
	}

	paperArt = []string{
		"                                                            ",
		"           ...........................                      ",
		"           'okkkkkkkkkkk         ;l,  '.                    ",
		"           'd000000000          .ll;.   ...                 ",
		"           'd0000000o            ll''      '.               ",
		"           'd000000k             ;l''......''''             ",
		"           'd000000.                 lllc    ..             ",
		"           'd000000                          '.             ",
		"           'd000000                                         ",
		"           'd000000                          .              ",
		"           'd000000'                                        ",
		"           'd000000O                                        ",
		"           'd0000000k                        '.             ",
		"           'd00000000k.                      '.             ",
		"           'd0000000000l                     '.             ",
		"           'd000000000000o,                  '.             ",
		"           'd00000000000000Oc.               '.             ",
		"           'd00000000000000000x;             '.             ",
		"           ;;:::::::::::::::::::;'..........''.             ",
		"                                                            ",
	}

	scissorsArt = []string{
		"                                                            ",
		"             .,c:.                        ,x:'.             ",
		"            .:odOkc.                    ;kxcxKc.            ",
		"            .codOkldl.               .;kxcxKKKl             ",
		"              :oxkkl:ol'           .:kxcxKKKO,              ",
		"                .oxkklcxo'       .:Ox:xKKKO,                ",
		"                  :oxkkoxko,.  .:OxcxKKKO,                  ",
		"                    'odkOOOOd,'OxcxKKKO'                    ",
		"                      'ldkOOOOd;;0KKk.                      ",
		"                        .ldx:::cd:l'                        ",
		"                       .'c;c;;:ckOd'.                       ",
		"                    .':ooc:',cddl:cooc'.                    ",
		"               ..,:loddddddo;  ,coddddddl:,'..              ",
		"           .,colc. cldddddc      ;codddl'  'lol;.           ",
		"          'ld;        'od:.      .,cc,        'oo'          ",
		"         .cd;          ,dl.      .:c,          ,dl.         ",
		"          ;dl.        .cdc        ,c:.        .cd;          ",
		"           .loc,....':oo,          .:c:,....,col.           ",
		"               .cllc.                   ;cc:                ",
		"                                                            ",
	}

	versusArt = []string{
		"                                                            ",
		"                     :dkKXWMMMMWXKkd:                       ",
		"                .lxOXWMMMMMMMMMMMMMMM,                      ",
		"             ;xKMMMMMMMMMMMMMMMMMMMM'                       ",
		"          .dXMMMMMMMMMMMMMMMMMMMMMM' d                      ",
		"         xWMMMMMMMMMMMMMMMMMMMMMMM. xl                      ",
		"       ,NMMMMMMMMMMMMMMMMMMMMMMMM. kN .'                    ",
		"      ;WMMMMMMMMMd    dMMMM0      kMl.O .                   ",
		"     .WMMMMMMMMMM0    'MMMO      OMM:doo:;                  ",
		"     kMMMMMMMMMMMW     WMO      OMMMMo,KMMMM;               ",
		"     WMMMMMMMMMMMM.    OO      kMMMMN                       ",
		"     KMMMMMMMMMMMMl    '       .dNMMMMNd'                   ",
		"     ,MMMMMMMMMMMMO                kMMMMM;                  ",
		"      kMMMMMMMMMMMWOoolO    0MMMM; oMMMMl                   ",
		"       xMMMMMMMMMMMXN'Xo   .d0XNNO0XKko.                    ",
		"        .MMMMMMMMMMM0NW                                     ",
		"          ,MMMMMMMMMMMo                                     ",
		"             XMMMMMMMN                                      ",
		"                ;MMMW                                       ",
		"                                                            ",
	}
)

var moveArt = map[gameModel.Move][]string{
	gameModel.Stone:    stoneArt,
	gameModel.Paper:    paperArt,
	gameModel.Scissors: scissorsArt,
}
