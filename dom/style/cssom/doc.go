/*
Package cssom provides abstractions for CSS stylesheets.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. The designer
uses style sheets in two places: inline styles of elements are parsed into
declarations, and exported documents carry an embedded stylesheet defining
the page body and a centered container.

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. A concrete implementation may be found in sub-package
douceuradapter, which is backed by https://github.com/aymerick/douceur.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
